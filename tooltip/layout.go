package tooltip

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Layout draws the tooltip's content at the current offset. It does not
// apply the tooltip's position or opacity; the host does that when placing
// it above the chart.
func (t *Tooltip) Layout(gtx C, th *material.Theme) D {
	gtx.Constraints.Min = image.Point{}
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			radius := gtx.Dp(4)
			paint.FillShape(gtx.Ops, t.style.Background, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, radius).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(t.line(th, t.style.XLabel, t.text.X)),
					layout.Rigid(t.line(th, t.style.YLabel, t.text.Y)),
				)
			})
		},
	)
}

func (t *Tooltip) line(th *material.Theme, label, value string) layout.Widget {
	return func(gtx C) D {
		return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
			layout.Rigid(t.label(th, label+": ", t.style.LabelColor).Layout),
			layout.Rigid(t.label(th, value, t.style.ValueColor).Layout),
		)
	}
}

func (t *Tooltip) label(th *material.Theme, txt string, c color.NRGBA) material.LabelStyle {
	l := material.Label(th, t.style.TextSize, txt)
	l.Color = c
	l.Font = t.style.Font
	l.MaxLines = 1
	return l
}
