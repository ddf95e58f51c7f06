// Package tooltip implements floating value readouts bound to a single
// point of a chart.
package tooltip

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/unit"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

// Gap is the distance in pixels between a tooltip and the point it
// describes.
const Gap = 10

// Anchor selects the side of its point a tooltip is placed on.
type Anchor uint8

const (
	Top Anchor = iota
	Bottom
	Left
	Right
)

func (a Anchor) String() string {
	switch a {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Text is the formatted readout of a point.
type Text struct {
	X, Y string
}

// Formatter renders a data point as tooltip text.
type Formatter func(geometry.Point) Text

// Style controls what a tooltip looks like.
type Style struct {
	XLabel, YLabel string
	LabelColor     color.NRGBA
	ValueColor     color.NRGBA
	Background     color.NRGBA
	TextSize       unit.Sp
	Font           font.Font
}

// Tooltip is a floating overlay bound to one data point. Its position is
// expressed in viewport coordinates because it is drawn outside of the
// chart's own layout.
type Tooltip struct {
	anchor Anchor
	style  Style
	format Formatter

	point geometry.Point
	text  Text

	// Inputs of the last UpdatePosition call, kept so that a new size can
	// re-run the placement.
	at, origin geometry.Point
	bounds     geometry.BoundBox

	width, height float64
	pos           geometry.Point

	visible bool
	opacity float32
}

// New returns a visible, fully opaque tooltip.
func New(anchor Anchor, format Formatter, style Style) *Tooltip {
	return &Tooltip{
		anchor:  anchor,
		style:   style,
		format:  format,
		visible: true,
		opacity: 1,
	}
}

// UpdatePoint binds the tooltip to p and re-renders its text.
func (t *Tooltip) UpdatePoint(p geometry.Point) {
	t.point = p
	t.text = t.format(p)
}

// Point returns the bound data point.
func (t *Tooltip) Point() geometry.Point {
	return t.point
}

// Text returns the formatted readout of the bound point.
func (t *Tooltip) Text() Text {
	return t.text
}

func (t *Tooltip) Style() Style {
	return t.style
}

func (t *Tooltip) Anchor() Anchor {
	return t.anchor
}

// SetAnchor changes the side of the point the tooltip is placed on. The new
// side takes effect on the next UpdatePosition.
func (t *Tooltip) SetAnchor(a Anchor) {
	t.anchor = a
}

// UpdatePosition places the tooltip next to the screen point at, which is
// in the chart's local pixel space. For Top and Bottom anchors the tooltip
// is kept within the horizontal span of bounds. origin is the on-screen
// position of the chart's container and is added to the result.
func (t *Tooltip) UpdatePosition(at geometry.Point, bounds geometry.BoundBox, origin geometry.Point) {
	t.at = at
	t.bounds = bounds
	t.origin = origin
	t.place()
}

// SetSize records the measured size of the tooltip's content and re-runs
// the placement with the last known position inputs.
func (t *Tooltip) SetSize(width, height float64) {
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	t.place()
}

// Size returns the last size reported with SetSize.
func (t *Tooltip) Size() (width, height float64) {
	return t.width, t.height
}

func (t *Tooltip) place() {
	var local geometry.Point
	switch t.anchor {
	case Top, Bottom:
		local.X = t.at.X - t.width/2
		// Both checks run against the same box; a tooltip wider than the box
		// ends up flush with its right edge.
		if local.X < t.bounds.X1 {
			local.X += t.bounds.X1 - local.X
		}
		if right := local.X + t.width; right > t.bounds.X2 {
			local.X -= right - t.bounds.X2
		}
		if t.anchor == Top {
			local.Y = t.at.Y - t.height - Gap
		} else {
			local.Y = t.at.Y + Gap
		}
	case Left, Right:
		local.Y = t.at.Y - t.height/2
		if t.anchor == Left {
			local.X = t.at.X - t.width - Gap
		} else {
			local.X = t.at.X + Gap
		}
	}
	t.pos = local.Add(t.origin)
}

// Position returns the top-left corner of the tooltip in viewport
// coordinates.
func (t *Tooltip) Position() geometry.Point {
	return t.pos
}

// Bounds returns the box covered by the tooltip in viewport coordinates.
func (t *Tooltip) Bounds() geometry.BoundBox {
	return geometry.BoundBox{
		X1: t.pos.X,
		Y1: t.pos.Y,
		X2: t.pos.X + t.width,
		Y2: t.pos.Y + t.height,
	}
}

func (t *Tooltip) Show() {
	t.visible = true
}

func (t *Tooltip) Hide() {
	t.visible = false
}

func (t *Tooltip) Visible() bool {
	return t.visible
}

// SetOpacity dims the tooltip without hiding it.
func (t *Tooltip) SetOpacity(o float32) {
	t.opacity = geometry.Clamp(o, 0, 1)
}

func (t *Tooltip) Opacity() float32 {
	return t.opacity
}
