package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/ratecurve/chart"
	"git.sr.ht/~whereswaldon/ratecurve/host"
	"git.sr.ht/~whereswaldon/ratecurve/source"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

// pick is the outcome of the file dialog.
type pick struct {
	file io.ReadCloser
	err  error
}

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	th         *material.Theme
	expl       *explorer.Explorer
	controller *stream.Controller

	style   chart.Config
	current *float64
	follow  bool

	path    string
	results *stream.Stream[source.Result]
	picks   *stream.Stream[pick]

	host   *host.Host
	widget *chart.Widget
	axes   [2]string

	openBtn   widget.Clickable
	followBtn widget.Clickable
	status    string
	failed    bool
}

// Options configures the viewer.
type Options struct {
	Style chart.Config
	// Current overrides the reference x found in curve files.
	Current *float64
	Follow  bool
}

func NewUI(controller *stream.Controller, expl *explorer.Explorer, opts Options) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	return &UI{
		th:         th,
		expl:       expl,
		controller: controller,
		style:      opts.Style,
		current:    opts.Current,
		follow:     opts.Follow,
		host:       host.New(image.Point{}),
		status:     "No curve loaded.",
	}
}

// Open starts loading the curve file at path, replacing the current
// source.
func (ui *UI) Open(path string) {
	ui.path = path
	follow := ui.follow
	ui.results = stream.New(ui.controller, func(ctx context.Context) <-chan source.Result {
		return source.Watcher{Follow: follow}.Watch(ctx, path)
	})
}

// choose runs the file dialog. It blocks until the user picks a file, so it
// only ever runs as a stream provider.
func (ui *UI) choose(ctx context.Context) <-chan pick {
	out := make(chan pick, 1)
	go func() {
		defer close(out)
		file, err := ui.expl.ChooseFile("csv")
		select {
		case out <- pick{file: file, err: err}:
		case <-ctx.Done():
			if file != nil {
				file.Close()
			}
		}
	}()
	return out
}

func (ui *UI) handlePick(p pick) {
	if p.err != nil {
		if !errors.Is(p.err, explorer.ErrUserDecline) {
			ui.fail(fmt.Errorf("failed opening file: %w", p.err))
		}
		return
	}
	// Files picked from disk can be followed; anything else is read once.
	if f, ok := p.file.(interface{ Name() string }); ok && f.Name() != "" {
		p.file.Close()
		ui.Open(f.Name())
		return
	}
	ui.path = ""
	file := p.file
	ui.results = stream.New(ui.controller, func(ctx context.Context) <-chan source.Result {
		return source.Read(ctx, file)
	})
}

func (ui *UI) fail(err error) {
	log.Printf("%v", err)
	ui.status = err.Error()
	ui.failed = true
}

// apply shows a freshly loaded curve, creating the chart on first use and
// whenever the axes are renamed.
func (ui *UI) apply(r source.Result) {
	if r.Err != nil {
		ui.fail(r.Err)
		return
	}
	c := r.Curve
	x := c.CurrentOr(0)
	if ui.current != nil {
		x = *ui.current
	}
	axes := [2]string{c.XName, c.YName}
	if ui.widget != nil && axes == ui.axes {
		if err := ui.widget.Update(c.Points, x); err != nil {
			ui.fail(fmt.Errorf("failed updating chart: %w", err))
			return
		}
	} else if err := ui.replace(c, x); err != nil {
		ui.fail(err)
		return
	}
	ui.axes = axes
	ui.failed = false
	name := "curve"
	if r.Path != "" {
		name = filepath.Base(r.Path)
	}
	ui.status = fmt.Sprintf("%s: %d points", name, len(c.Points))
}

func (ui *UI) replace(c source.Curve, x float64) error {
	cfg := ui.style
	if cfg.XLegendText == "" {
		cfg.XLegendText = c.XName
	}
	if cfg.YLegendText == "" {
		cfg.YLegendText = c.YName
	}
	w, err := chart.New(c.Points, x, cfg)
	if err != nil {
		return fmt.Errorf("failed creating chart: %w", err)
	}
	if ui.widget != nil {
		if err := ui.widget.Unmount(); err != nil {
			return err
		}
	}
	if err := w.Mount(ui.host); err != nil {
		return err
	}
	ui.widget = w
	return nil
}

// Update the state of the UI. Must be called once per frame before layout.
func (ui *UI) Update(gtx C) {
	if ui.openBtn.Clicked(gtx) && ui.picks == nil {
		ui.picks = stream.New(ui.controller, ui.choose)
	}
	if ui.followBtn.Clicked(gtx) {
		ui.follow = !ui.follow
		if ui.path != "" {
			ui.Open(ui.path)
		}
	}
	if ui.picks != nil {
		if p, ok := ui.picks.ReadNew(gtx); ok {
			ui.picks = nil
			ui.handlePick(p)
		}
	}
	if ui.results != nil {
		if r, ok := ui.results.ReadNew(gtx); ok {
			ui.apply(r)
		}
	}
}

func (ui *UI) layoutToolbar(gtx C) D {
	return component.Surface(ui.th).Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.UniformInset(4).Layout(gtx, material.IconButton(ui.th, &ui.openBtn, openIcon, "Open curve").Layout)
			}),
			layout.Rigid(func(gtx C) D {
				icon, description := pauseIcon, "Stop following"
				if !ui.follow {
					icon, description = playIcon, "Follow file"
				}
				return layout.UniformInset(4).Layout(gtx, material.IconButton(ui.th, &ui.followBtn, icon, description).Layout)
			}),
			layout.Flexed(1, func(gtx C) D {
				l := material.Body2(ui.th, ui.status)
				l.MaxLines = 1
				if ui.failed {
					l.Color = color.NRGBA{R: 150, A: 255}
				}
				return layout.UniformInset(8).Layout(gtx, l.Layout)
			}),
		)
	})
}

func (ui *UI) layoutStartScreen(gtx C) D {
	return layout.Center.Layout(gtx, func(gtx C) D {
		return material.Body1(ui.th, "Open a curve file to plot it.").Layout(gtx)
	})
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	var toolbar int
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			dims := ui.layoutToolbar(gtx)
			toolbar = dims.Size.Y
			return dims
		}),
		layout.Flexed(1, func(gtx C) D {
			if ui.widget == nil {
				return ui.layoutStartScreen(gtx)
			}
			ui.host.SetOrigin(image.Pt(0, toolbar))
			return ui.host.Layout(gtx, ui.th)
		}),
	)
}
