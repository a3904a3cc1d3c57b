package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/pointwise"
	"github.com/npillmayer/pointwise/bezier"
	"github.com/npillmayer/pointwise/internal/config"
	"github.com/npillmayer/pointwise/pathinfo"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch --file <path>",
		Short: "Reconcile satellites whenever the path file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" || file == "-" {
				return fmt.Errorf("watch needs a path data file, use --file")
			}
			pw, cfg, err := engine(cmd, nil)
			if err != nil {
				return err
			}
			pw.MarkExtremes(cfg.ExtremesStyle())
			w := &watcher{out: cmd.OutOrStdout(), file: file, pw: pw, cfg: cfg}
			fmt.Fprintf(w.out, "%s: %d segment(s), %d satellite(s)\n", file, len(pw.Curve()),
				len(pw.Satellites()))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.run(ctx, nil)
		},
	}
}

// watcher re-reads a path data file on change and reconciles the satellite
// table with the new curve.
type watcher struct {
	out  io.Writer
	file string
	pw   *pointwise.Pointwise
	cfg  config.Config
}

// run watches the file until ctx is done. If ready is not nil, it is closed
// as soon as the file is being watched.
func (w *watcher) run(ctx context.Context, ready chan<- struct{}) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.file); err != nil {
		return fmt.Errorf("watch %s: %w", w.file, err)
	}
	if ready != nil {
		close(ready)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(w.file)
			if err != nil {
				fmt.Fprintf(w.out, "%s: %v\n", w.file, err)
				continue
			}
			w.reload(data)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.out, "watch: %v\n", err)
		}
	}
}

// reload parses path data and reconciles the satellite table. Malformed or
// empty path data is reported and leaves the table untouched.
func (w *watcher) reload(data []byte) (pointwise.Reconciliation, bool) {
	v, err := bezier.ParsePathData(string(data))
	if err != nil {
		fmt.Fprintf(w.out, "%s: %v\n", w.file, err)
		return pointwise.Reconciliation{}, false
	}
	if len(v) == 0 { // editors may truncate before writing
		fmt.Fprintf(w.out, "%s: empty, ignored\n", w.file)
		return pointwise.Reconciliation{}, false
	}
	r := w.pw.Recalculate(pointwise.CurveOf(v))
	w.pw.MarkExtremes(w.cfg.ExtremesStyle())
	fmt.Fprintf(w.out, "%s: %d segment(s), %s\n", w.file, len(w.pw.Curve()), r)
	fmt.Fprintf(w.out, "  %s\n", bezier.PathDataString(w.pw.Curve().Paths(pathinfo.PathTolerance)))
	return r, true
}
