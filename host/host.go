// Package host mounts chart widgets into a Gio layout.
package host

import (
	"image"
	"math"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/ratecurve/chart"
	"git.sr.ht/~whereswaldon/ratecurve/geometry"
	"git.sr.ht/~whereswaldon/ratecurve/tooltip"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Host is a chart.Container backed by a region of a Gio window. It takes
// the size of the constraints it is laid out with and translates Gio
// pointer events into chart notifications.
type Host struct {
	size   image.Point
	origin geometry.Point
	view   chart.View

	nextID  int
	sizes   map[int]func(width, height float64)
	pointer map[int]func(chart.PointerEvent)
	hovered bool
}

var _ chart.Container = (*Host)(nil)

// New creates a host that reports initial as its size until it is first
// laid out.
func New(initial image.Point) *Host {
	return &Host{
		size:    initial,
		sizes:   map[int]func(float64, float64){},
		pointer: map[int]func(chart.PointerEvent){},
	}
}

func (h *Host) Size() (width, height float64) {
	return float64(h.size.X), float64(h.size.Y)
}

func (h *Host) Origin() geometry.Point {
	return h.origin
}

// SetOrigin records where the host sits in the window. Mounted widgets are
// re-rendered when it moves.
func (h *Host) SetOrigin(p image.Point) {
	origin := geometry.Pt(float64(p.X), float64(p.Y))
	if origin == h.origin {
		return
	}
	h.origin = origin
	h.notifySize()
}

func (h *Host) Attach(v chart.View) {
	h.view = v
}

func (h *Host) Detach(v chart.View) {
	if h.view == v {
		h.view = nil
	}
}

func (h *Host) ObserveSize(fn func(width, height float64)) (cancel func()) {
	id := h.nextID
	h.nextID++
	h.sizes[id] = fn
	return func() { delete(h.sizes, id) }
}

func (h *Host) ObservePointer(fn func(chart.PointerEvent)) (cancel func()) {
	id := h.nextID
	h.nextID++
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

// Resize changes the host's size and notifies observers if it differs from
// the current one.
func (h *Host) Resize(size image.Point) {
	if size == h.size {
		return
	}
	h.size = size
	h.notifySize()
}

func (h *Host) notifySize() {
	w, ht := h.Size()
	for _, fn := range h.sizes {
		fn(w, ht)
	}
}

func (h *Host) notifyPointer(ev chart.PointerEvent) {
	for _, fn := range h.pointer {
		fn(ev)
	}
}

// Update processes pointer events delivered since the last frame.
func (h *Host) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: h,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move | pointer.Cancel,
		})
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case pointer.Event:
			switch ev.Kind {
			case pointer.Enter, pointer.Move:
				h.hovered = true
				h.notifyPointer(chart.PointerEvent{
					Kind:     chart.PointerMove,
					Position: geometry.Pt(float64(ev.Position.X), float64(ev.Position.Y)),
				})
			case pointer.Leave, pointer.Cancel:
				if h.hovered {
					h.hovered = false
					h.notifyPointer(chart.PointerEvent{Kind: chart.PointerLeave})
				}
			}
		}
	}
}

// Layout fills the maximum constraints with the attached view. Tooltips
// are painted last, above everything else in the window.
func (h *Host) Layout(gtx C, th *material.Theme) D {
	h.Update(gtx)
	h.Resize(gtx.Constraints.Max)
	size := h.size

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, h)
	if h.view == nil {
		return D{Size: size}
	}
	h.view.Scene().Layout(gtx, th)
	for _, tip := range h.view.Tooltips() {
		if tip.Visible() {
			h.layoutTooltip(gtx, th, tip)
		}
	}
	return D{Size: size}
}

func (h *Host) layoutTooltip(gtx C, th *material.Theme, tip *tooltip.Tooltip) {
	macro := op.Record(gtx.Ops)
	dims := tip.Layout(gtx, th)
	content := macro.Stop()
	tip.SetSize(float64(dims.Size.X), float64(dims.Size.Y))

	pos := tip.Position().Sub(h.origin)
	macro = op.Record(gtx.Ops)
	offset := op.Offset(image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y)))).Push(gtx.Ops)
	opacity := paint.PushOpacity(gtx.Ops, tip.Opacity())
	content.Add(gtx.Ops)
	opacity.Pop()
	offset.Pop()
	op.Defer(gtx.Ops, macro.Stop())
}
