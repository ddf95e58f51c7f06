// Command ratecurve plots a curve file in a window and follows it as it
// changes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/ratecurve/chart"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		stylePath string
		current   float64
		follow    bool
	)
	cmd := &cobra.Command{
		Use:   "ratecurve [curve.csv]",
		Short: "Plot a rate curve",
		Long: `Plot the curve in a CSV file with a marker at the current x.

The file's first line names the two axes, every following line is an
"x, y" sample in ascending x order, and a "current, x" line places the
marker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStyle(stylePath)
			if err != nil {
				return err
			}
			opts := Options{Style: cfg, Follow: follow}
			if cmd.Flags().Changed("current") {
				opts.Current = &current
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			go func() {
				w := app.NewWindow(app.Title("ratecurve"), app.Size(unit.Dp(800), unit.Dp(600)))
				if err := loop(w, opts, path); err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	cmd.Flags().StringVar(&stylePath, "style", "", "YAML style file")
	cmd.Flags().Float64Var(&current, "current", 0, "x of the reference marker, overriding the curve file")
	cmd.Flags().BoolVar(&follow, "follow", true, "reload the curve file when it changes")
	return cmd
}

func loadStyle(path string) (chart.Config, error) {
	if path == "" {
		return chart.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return chart.Config{}, fmt.Errorf("failed opening style: %w", err)
	}
	defer f.Close()
	style, err := chart.LoadStyle(f)
	if err != nil {
		return chart.Config{}, fmt.Errorf("failed loading %s: %w", path, err)
	}
	cfg, err := style.Config()
	if err != nil {
		return chart.Config{}, fmt.Errorf("failed loading %s: %w", path, err)
	}
	return cfg, nil
}

func loop(w *app.Window, opts Options, path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expl := explorer.NewExplorer(w)
	controller := stream.NewController(ctx, w.Invalidate)
	ui := NewUI(controller, expl, opts)
	if path != "" {
		ui.Open(path)
	}
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
			controller.Sweep()
		}
	}
}
