package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/npillmayer/pointwise"
	"github.com/npillmayer/pointwise/pathinfo"
	"github.com/npillmayer/pointwise/satellite"
	"github.com/pelletier/go-toml/v2"
)

// tableDoc is the TOML form of a satellite table.
type tableDoc struct {
	Segments   int            `toml:"segments"`
	Subpaths   []subpathDoc   `toml:"subpath"`
	Satellites []satelliteDoc `toml:"satellite"`
}

type subpathDoc struct {
	First  int  `toml:"first"`
	Last   int  `toml:"last"`
	Closed bool `toml:"closed"`
}

type satelliteDoc struct {
	Index     int     `toml:"index"`
	Type      string  `toml:"type"`
	IsTime    bool    `toml:"is_time"`
	IsEndOpen bool    `toml:"is_end_open"`
	Active    bool    `toml:"active"`
	HasMirror bool    `toml:"has_mirror"`
	Hidden    bool    `toml:"hidden"`
	Amount    float64 `toml:"amount"`
	Angle     float64 `toml:"angle"`
	Steps     int     `toml:"steps"`
}

func newTableDoc(pw *pointwise.Pointwise) tableDoc {
	doc := tableDoc{Segments: len(pw.Curve())}
	for _, sp := range pw.PathInfo().Subpaths() {
		doc.Subpaths = append(doc.Subpaths, subpathDoc{First: sp.First, Last: sp.Last, Closed: sp.Closed})
	}
	for _, e := range pw.Satellites() {
		doc.Satellites = append(doc.Satellites, satelliteDoc{
			Index:     e.Index,
			Type:      e.Type.String(),
			IsTime:    e.IsTime,
			IsEndOpen: e.IsEndOpen,
			Active:    e.Active,
			HasMirror: e.HasMirror,
			Hidden:    e.Hidden,
			Amount:    e.Amount,
			Angle:     e.Angle,
			Steps:     e.Steps,
		})
	}
	return doc
}

// entries converts the satellites of a TOML table back into table entries.
func (doc tableDoc) entries() ([]pointwise.Entry, error) {
	entries := make([]pointwise.Entry, 0, len(doc.Satellites))
	for i, s := range doc.Satellites {
		typ, err := satellite.ParseType(s.Type)
		if err != nil {
			return nil, fmt.Errorf("satellite #%d: %w", i, err)
		}
		entries = append(entries, pointwise.Entry{
			Index: s.Index,
			Satellite: satellite.Satellite{
				Type:      typ,
				IsTime:    s.IsTime,
				IsEndOpen: s.IsEndOpen,
				Active:    s.Active,
				HasMirror: s.HasMirror,
				Hidden:    s.Hidden,
				Amount:    s.Amount,
				Angle:     s.Angle,
				Steps:     s.Steps,
			},
		})
	}
	return entries, nil
}

func encodeTOML(w io.Writer, pw *pointwise.Pointwise) error {
	data, err := toml.Marshal(newTableDoc(pw))
	if err != nil {
		return fmt.Errorf("encode satellites: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func decodeTOML(data []byte) (tableDoc, error) {
	var doc tableDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return tableDoc{}, fmt.Errorf("decode satellites: %w", err)
	}
	return doc, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func optIndex(i int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(i)
}

func renderTopology(info *pathinfo.PathInfo) string {
	var rows [][]string
	for k, sp := range info.Subpaths() {
		for i := sp.First; i <= sp.Last; i++ {
			prev, pok := info.Previous(i)
			next, nok := info.Next(i)
			rows = append(rows, []string{
				strconv.Itoa(i), strconv.Itoa(k), yesNo(sp.Closed),
				optIndex(prev, pok), optIndex(next, nok),
			})
		}
	}
	return render([]string{"segment", "subpath", "closed", "previous", "next"}, rows)
}

func renderSatellites(entries []pointwise.Entry) string {
	rows := make([][]string, 0, len(entries))
	for pos, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(pos), strconv.Itoa(e.Index), e.Type.String(),
			yesNo(e.Active), yesNo(e.Hidden), yesNo(e.IsTime), yesNo(e.HasMirror),
			yesNo(e.IsEndOpen), strconv.FormatFloat(e.Amount, 'g', 6, 64),
			strconv.FormatFloat(e.Angle, 'g', 6, 64),
		})
	}
	return render([]string{"pos", "segment", "type", "active", "hidden", "time", "mirror",
		"end", "amount", "angle"}, rows)
}
