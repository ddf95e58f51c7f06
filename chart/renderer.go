package chart

import (
	"math"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
	"git.sr.ht/~whereswaldon/ratecurve/scene"
)

// frame is the geometry one render or pointer event works with. Everything
// drawn or hit-tested in a single operation comes from one frame.
type frame struct {
	chart, curve geometry.BoundBox
	tr           geometry.Transform
}

func newFrame(chart, curve geometry.BoundBox) frame {
	return frame{
		chart: chart,
		curve: curve,
		tr:    geometry.NewTransform(chart, curve),
	}
}

// renderer owns the chart's scene graph and the handles of the nodes it
// rewrites on every render.
type renderer struct {
	s     *Settings
	scene *scene.Scene

	vLines, hLines   []*scene.Node
	xLabels, yLabels []*scene.Node
	xLegend, yLegend *scene.Node
	curve            *scene.Node
	point, cursor    *scene.Node
}

func newRenderer(s *Settings) *renderer {
	r := &renderer{s: s, scene: scene.New()}

	gridline := func(i, n int) scene.Node {
		return scene.Node{
			Kind:   scene.Line,
			Width:  1,
			Color:  s.AxisColor,
			Dashed: i > 0 && i < n-1,
		}
	}
	for i := 0; i < s.VerticalAxisCount; i++ {
		r.vLines = append(r.vLines, r.scene.Add(gridline(i, s.VerticalAxisCount)))
	}
	for i := 0; i < s.HorizontalAxisCount; i++ {
		r.hLines = append(r.hLines, r.scene.Add(gridline(i, s.HorizontalAxisCount)))
	}

	label := scene.Node{
		Kind:     scene.Label,
		Color:    s.LabelColor,
		TextSize: s.LabelFontSize,
		Font:     s.Font,
	}
	for i := 0; i < s.VerticalAxisCount; i++ {
		l := label
		l.HAlign, l.VAlign = scene.Middle, scene.Start
		r.xLabels = append(r.xLabels, r.scene.Add(l))
	}
	for i := 0; i < s.HorizontalAxisCount; i++ {
		l := label
		l.HAlign, l.VAlign = scene.End, scene.Middle
		r.yLabels = append(r.yLabels, r.scene.Add(l))
	}

	legend := scene.Node{
		Kind:     scene.Label,
		Color:    s.LegendColor,
		TextSize: s.LegendFontSize,
		Font:     s.Font,
		HAlign:   scene.Middle,
	}
	xLegend := legend
	xLegend.Text = s.XLegendText
	xLegend.VAlign = scene.Start
	r.xLegend = r.scene.Add(xLegend)

	yLegend := legend
	yLegend.Text = s.YLegendText
	yLegend.VAlign = scene.Middle
	yLegend.Rotation = -math.Pi / 2
	yLegend.Hidden = s.DisableRotatedLegend
	r.yLegend = r.scene.Add(yLegend)

	r.curve = r.scene.Add(scene.Node{
		Kind:  scene.Polyline,
		Width: s.CurveWidth,
		Color: s.CurveColor,
	})
	r.point = r.scene.Add(scene.Node{
		Kind:   scene.Circle,
		Radius: s.PointRadius,
		Color:  s.PointColor,
	})
	r.cursor = r.scene.Add(scene.Node{
		Kind:   scene.Circle,
		Radius: s.CursorRadius,
		Color:  s.CursorColor,
		Hidden: true,
	})
	return r
}

// relabel recomputes the gridline label text. It only needs to run when the
// curve gizmo changes.
func (r *renderer) relabel(curve geometry.BoundBox) {
	for i, v := range geometry.Steps(curve.X1, curve.X2, len(r.xLabels)) {
		r.xLabels[i].Text = r.s.XLabelFormatter(v)
	}
	for i, v := range geometry.Steps(curve.Y1, curve.Y2, len(r.yLabels)) {
		r.yLabels[i].Text = r.s.YLabelFormatter(v)
	}
}

// render positions every node for f. The curve is drawn through points in
// their original order and the reference marker is placed on reference.
func (r *renderer) render(f frame, points []geometry.Point, reference geometry.Point) {
	c := f.chart
	for i, x := range geometry.Steps(c.X1, c.X2, len(r.vLines)) {
		r.vLines[i].SetSegment(geometry.Pt(x, c.Y1), geometry.Pt(x, c.Y2))
		r.xLabels[i].MoveTo(geometry.Pt(x, c.Y2).Add(r.s.XLabelOffset))
	}
	// Horizontal gridlines run bottom to top so that they line up with
	// labels computed from the curve's lowest value upward.
	for i, y := range geometry.Steps(c.Y2, c.Y1, len(r.hLines)) {
		r.hLines[i].SetSegment(geometry.Pt(c.X1, y), geometry.Pt(c.X2, y))
		r.yLabels[i].MoveTo(geometry.Pt(c.X1, y).Add(r.s.YLabelOffset))
	}

	center := c.Center()
	r.xLegend.MoveTo(geometry.Pt(center.X, c.Y2).Add(r.s.XLegendOffset))
	r.yLegend.MoveTo(geometry.Pt(c.X1, center.Y).Add(r.s.YLegendOffset))

	r.curve.Points = r.curve.Points[:0]
	for _, p := range points {
		r.curve.Points = append(r.curve.Points, scene.Pt(f.tr.ToScreen(p)))
	}

	r.point.MoveTo(f.tr.ToScreen(reference))
}

func (r *renderer) showCursor(at geometry.Point) {
	r.cursor.MoveTo(at)
	r.cursor.Hidden = false
}

func (r *renderer) hideCursor() {
	r.cursor.Hidden = true
}
