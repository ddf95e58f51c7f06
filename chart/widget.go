// Package chart implements an interactive curve plot: the curve of a
// sampled function, a reference marker at a caller-supplied x, and a hover
// cursor that traces the curve under the pointer.
//
// A Widget is created once with New, attached to a Container with Mount,
// fed fresh data with Update, and removed with Unmount. It is not safe for
// concurrent use; the container serializes all callbacks.
package chart

import (
	"fmt"
	"math"
	"slices"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
	"git.sr.ht/~whereswaldon/ratecurve/scene"
	"git.sr.ht/~whereswaldon/ratecurve/tooltip"
)

// DimmedOpacity is the opacity of the reference tooltip while the cursor
// tooltip is showing.
const DimmedOpacity = 0.6

type Widget struct {
	settings Settings

	points   []geometry.Point
	currentX float64
	curve    geometry.BoundBox
	chart    geometry.BoundBox
	width    float64
	height   float64

	container Container
	cancels   []func()

	r         *renderer
	reference *tooltip.Tooltip
	cursor    *tooltip.Tooltip

	hover    geometry.Point
	hovering bool
}

var _ View = (*Widget)(nil)

// New creates an unmounted widget plotting points with a reference marker
// at x. Points must be sorted by ascending X with no repeats. The returned
// error wraps geometry.ErrInvalid or ErrConfig.
func New(points []geometry.Point, x float64, cfg Config) (*Widget, error) {
	s, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if err := geometry.Validate(points, s.CurvePadding); err != nil {
		return nil, err
	}
	w := &Widget{settings: s}
	w.r = newRenderer(&w.settings)
	w.reference = tooltip.New(tooltip.Top, s.TooltipFormatter, s.Tooltip)
	w.cursor = tooltip.New(tooltip.Right, s.TooltipFormatter, s.Tooltip)
	w.cursor.Hide()
	w.setData(points, x)
	return w, nil
}

// Mount attaches the widget to c, starts following c's size and pointer
// notifications and renders once at c's current size.
func (w *Widget) Mount(c Container) error {
	if w.container != nil {
		return fmt.Errorf("%w: mount called on a mounted widget", ErrLifecycle)
	}
	w.container = c
	c.Attach(w)
	w.cancels = append(w.cancels,
		c.ObserveSize(w.resize),
		c.ObservePointer(w.pointer),
	)
	w.resize(c.Size())
	return nil
}

// Unmount stops all notifications and detaches the widget from its
// container. No callback reaches the widget once Unmount returns.
func (w *Widget) Unmount() error {
	if w.container == nil {
		return fmt.Errorf("%w: unmount called on an unmounted widget", ErrLifecycle)
	}
	for _, cancel := range w.cancels {
		cancel()
	}
	w.cancels = nil
	w.container.Detach(w)
	w.container = nil
	w.leave()
	return nil
}

// Mounted reports whether the widget is attached to a container.
func (w *Widget) Mounted() bool {
	return w.container != nil
}

// Update replaces the plotted data and reference x. Invalid data is
// rejected before anything changes. A mounted widget redraws immediately.
func (w *Widget) Update(points []geometry.Point, x float64) error {
	if err := geometry.Validate(points, w.settings.CurvePadding); err != nil {
		return err
	}
	w.setData(points, x)
	if w.hovering {
		if y, ok := geometry.Trace(w.points, w.hover.X); ok {
			w.hover.Y = y
		} else {
			w.leave()
		}
	}
	if w.container != nil {
		w.render()
	}
	return nil
}

func (w *Widget) setData(points []geometry.Point, x float64) {
	w.points = slices.Clone(points)
	w.currentX = x
	w.curve = geometry.CurveGizmo(w.points, w.settings.CurvePadding)
	w.r.relabel(w.curve)
}

func (w *Widget) resize(width, height float64) {
	if w.container == nil {
		return
	}
	w.width, w.height = width, height
	w.render()
}

func (w *Widget) render() {
	w.chart = geometry.ChartGizmo(w.width, w.height, w.settings.ChartPosition)
	f := newFrame(w.chart, w.curve)

	ref := w.ReferencePoint()
	w.r.render(f, w.points, ref)
	w.reference.UpdatePoint(ref)
	w.reference.UpdatePosition(f.tr.ToScreen(ref), f.chart, w.container.Origin())

	if w.hovering {
		w.placeCursor(f)
	}
}

func (w *Widget) pointer(ev PointerEvent) {
	if w.container == nil {
		return
	}
	switch ev.Kind {
	case PointerMove:
		w.move(ev.Position.X)
	case PointerLeave:
		w.leave()
	}
}

func (w *Widget) move(screenX float64) {
	if !drawable(w.chart) {
		w.leave()
		return
	}
	f := newFrame(w.chart, w.curve)
	x := f.tr.ToData(screenX)
	y, ok := geometry.Trace(w.points, x)
	if !ok {
		w.leave()
		return
	}
	w.hover = geometry.Pt(x, y)
	w.hovering = true
	w.placeCursor(f)
}

func (w *Widget) placeCursor(f frame) {
	at := f.tr.ToScreen(w.hover)
	w.r.showCursor(at)
	w.reference.SetOpacity(DimmedOpacity)
	w.cursor.SetAnchor(AnchorFor(w.points, w.hover.X))
	w.cursor.UpdatePoint(w.hover)
	w.cursor.Show()
	w.cursor.UpdatePosition(at, f.chart, w.container.Origin())
}

// drawable reports whether the plotting area has room to map pixels back
// to data.
func drawable(chart geometry.BoundBox) bool {
	width, height := chart.Width(), chart.Height()
	return width > 0 && height > 0 && !math.IsInf(width, 0) && !math.IsInf(height, 0)
}

func (w *Widget) leave() {
	w.hovering = false
	w.r.hideCursor()
	w.cursor.Hide()
	w.reference.SetOpacity(1)
}

// AnchorFor picks the side of the cursor tooltip for a hover at x: it flips
// to the left once the hover is past the middle of the curve.
func AnchorFor(points []geometry.Point, x float64) tooltip.Anchor {
	if geometry.Progress(points, x) > 0.5 {
		return tooltip.Left
	}
	return tooltip.Right
}

// ReferencePoint returns the data-space position of the reference marker.
// A reference x outside the curve is drawn at y=0.
func (w *Widget) ReferencePoint() geometry.Point {
	y, _ := geometry.Trace(w.points, w.currentX)
	return geometry.Pt(w.currentX, y)
}

// Hover returns the data-space position of the hover cursor and whether it
// is showing.
func (w *Widget) Hover() (geometry.Point, bool) {
	return w.hover, w.hovering
}

// CurveGizmo returns the padded data-space box of the current points.
func (w *Widget) CurveGizmo() geometry.BoundBox {
	return w.curve
}

// ChartGizmo returns the pixel-space plotting area of the last render.
func (w *Widget) ChartGizmo() geometry.BoundBox {
	return w.chart
}

// Points returns a copy of the plotted points.
func (w *Widget) Points() []geometry.Point {
	return slices.Clone(w.points)
}

func (w *Widget) CurrentX() float64 {
	return w.currentX
}

func (w *Widget) Settings() Settings {
	return w.settings
}

func (w *Widget) Scene() *scene.Scene {
	return w.r.scene
}

// Tooltips returns the reference and cursor tooltips, in paint order.
func (w *Widget) Tooltips() []*tooltip.Tooltip {
	return []*tooltip.Tooltip{w.reference, w.cursor}
}

func (w *Widget) Reference() *tooltip.Tooltip {
	return w.reference
}

func (w *Widget) Cursor() *tooltip.Tooltip {
	return w.cursor
}
