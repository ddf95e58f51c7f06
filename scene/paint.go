package scene

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

const (
	dashOn  = 4
	dashOff = 4
)

// Layout paints every visible node of the scene in order. The scene's
// coordinates are interpreted relative to the current offset.
func (s *Scene) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	for _, n := range s.nodes {
		if n.Hidden {
			continue
		}
		switch n.Kind {
		case Line, Polyline:
			stroke(gtx.Ops, n)
		case Circle:
			disc(gtx.Ops, n)
		case Label:
			label(gtx, th, n)
		}
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func stroke(ops *op.Ops, n *Node) {
	if len(n.Points) < 2 || n.Width <= 0 {
		return
	}
	var p clip.Path
	p.Begin(ops)
	if n.Dashed {
		for i := 0; i+1 < len(n.Points); i++ {
			for _, seg := range dashes(n.Points[i], n.Points[i+1], dashOn, dashOff) {
				p.MoveTo(seg[0])
				p.LineTo(seg[1])
			}
		}
	} else {
		p.MoveTo(n.Points[0])
		for _, pt := range n.Points[1:] {
			p.LineTo(pt)
		}
	}
	paint.FillShape(ops, n.Color, clip.Stroke{
		Path:  p.End(),
		Width: n.Width,
	}.Op())
}

func disc(ops *op.Ops, n *Node) {
	if len(n.Points) < 1 || n.Radius <= 0 {
		return
	}
	c, r := n.Points[0], n.Radius
	bounds := image.Rectangle{
		Min: image.Pt(round(c.X-r), round(c.Y-r)),
		Max: image.Pt(round(c.X+r), round(c.Y+r)),
	}
	paint.FillShape(ops, n.Color, clip.Ellipse(bounds).Op(ops))
}

func label(gtx layout.Context, th *material.Theme, n *Node) {
	if len(n.Points) < 1 || n.Text == "" {
		return
	}
	l := material.Label(th, n.TextSize, n.Text)
	l.Color = n.Color
	l.Font = n.Font
	l.MaxLines = 1

	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(math.MaxInt32, math.MaxInt32)}
	macro := op.Record(gtx.Ops)
	dims := l.Layout(lgtx)
	call := macro.Stop()

	size := layout.FPt(dims.Size)
	anchor := n.Points[0]
	offset := anchor.Sub(f32.Pt(align(n.HAlign, size.X), align(n.VAlign, size.Y)))
	tr := f32.Affine2D{}.Offset(offset)
	if n.Rotation != 0 {
		tr = tr.Rotate(anchor, n.Rotation)
	}
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// align returns how far a run of the given extent must be shifted back so
// that it sits at a relative to its anchor.
func align(a Align, extent float32) float32 {
	switch a {
	case Middle:
		return extent / 2
	case End:
		return extent
	default:
		return 0
	}
}

// dashes splits the segment a-b into alternating drawn and skipped runs,
// returning the drawn ones.
func dashes(a, b f32.Point, on, off float32) [][2]f32.Point {
	d := b.Sub(a)
	length := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if length == 0 {
		return nil
	}
	dir := d.Mul(1 / length)
	var out [][2]f32.Point
	for pos := float32(0); pos < length; pos += on + off {
		end := min(pos+on, length)
		out = append(out, [2]f32.Point{a.Add(dir.Mul(pos)), a.Add(dir.Mul(end))})
	}
	return out
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
