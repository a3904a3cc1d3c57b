package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/pointwise"
	"github.com/npillmayer/pointwise/internal/config"
	"github.com/spf13/cobra"
)

func newTopologyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topology [pathdata]",
		Short: "Show subpaths and node neighbours of a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, _, err := engine(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTopology(pw.PathInfo()))
			return pw.Validate()
		},
	}
}

func newSatellitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "satellites [pathdata]",
		Short: "Generate the satellite table of a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, cfg, err := engine(cmd, args)
			if err != nil {
				return err
			}
			if x, _ := cmd.Flags().GetBool("extremes"); x {
				pw.MarkExtremes(cfg.ExtremesStyle())
			}
			format := cfg.Format
			if cmd.Flags().Changed("format") {
				format, _ = cmd.Flags().GetString("format")
			}
			return printTable(cmd, pw, format)
		},
	}
	cmd.Flags().Bool("extremes", false, "mark end nodes of open subpaths")
	cmd.Flags().String("format", config.FormatText, "output format (text, toml)")
	return cmd
}

func printTable(cmd *cobra.Command, pw *pointwise.Pointwise, format string) error {
	switch format {
	case config.FormatTOML:
		return encodeTOML(cmd.OutOrStdout(), pw)
	case config.FormatText:
		fmt.Fprintln(cmd.OutOrStdout(), renderSatellites(pw.Satellites()))
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [pathdata]",
		Short: "Convert a satellite amount between radius and length",
		RunE:  runConvert,
	}
	cmd.Flags().Int("index", 0, "segment index of the satellite")
	cmd.Flags().Float64("radius", 0, "radius to convert to a length")
	cmd.Flags().Float64("length", 0, "length to convert to a radius")
	cmd.Flags().String("table", "", "satellite table in TOML format (default: generate)")
	cmd.MarkFlagsMutuallyExclusive("radius", "length")
	cmd.MarkFlagsOneRequired("radius", "length")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	pw, _, err := engine(cmd, args)
	if err != nil {
		return err
	}
	if file, _ := cmd.Flags().GetString("table"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read satellite table: %w", err)
		}
		doc, err := decodeTOML(data)
		if err != nil {
			return err
		}
		entries, err := doc.entries()
		if err != nil {
			return err
		}
		pw.SetSatellites(entries)
		if err := pw.Validate(); err != nil {
			return err
		}
	}
	index, _ := cmd.Flags().GetInt("index")
	positions := pw.FindSatellites(index, 1)
	if len(positions) == 0 {
		return fmt.Errorf("no satellite at segment %d", index)
	}
	e, _ := pw.Satellite(positions[0])
	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("radius") {
		r, _ := cmd.Flags().GetFloat64("radius")
		fmt.Fprintf(out, "radius %g at %s segment %d = length %g\n", r, e.Type.Name(), index,
			pw.RadiusToLength(r, e))
		return nil
	}
	l, _ := cmd.Flags().GetFloat64("length")
	fmt.Fprintf(out, "length %g at %s segment %d = radius %g\n", l, e.Type.Name(), index,
		pw.LengthToRadius(l, e))
	return nil
}
