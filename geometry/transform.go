package geometry

// Transform is the affine map from a curve gizmo onto a chart gizmo. Screen
// y grows downward while data y grows upward, so the y axis is inverted.
//
// A Transform is cheap to build and is meant to be derived from the current
// gizmos whenever it is needed rather than stored.
type Transform struct {
	XScale, YScale   float64
	XOffset, YOffset float64
}

// NewTransform maps curve onto chart. The offsets anchor the padded first
// sample, which is the lower-left corner of curve, to the lower-left corner
// of chart.
func NewTransform(chart, curve BoundBox) Transform {
	t := Transform{
		XScale: chart.Width() / curve.Width(),
		YScale: chart.Height() / curve.Height(),
	}
	t.XOffset = chart.X1 - curve.X1*t.XScale
	t.YOffset = chart.Y2 + curve.Y1*t.YScale
	return t
}

// ToScreen converts a data-space point to pixel space.
func (t Transform) ToScreen(p Point) Point {
	return Point{
		X: p.X*t.XScale + t.XOffset,
		Y: t.YOffset - p.Y*t.YScale,
	}
}

// ToData converts a pixel-space x coordinate to data space.
func (t Transform) ToData(screenX float64) float64 {
	return (screenX - t.XOffset) / t.XScale
}

// ToDataY converts a pixel-space y coordinate to data space.
func (t Transform) ToDataY(screenY float64) float64 {
	return (t.YOffset - screenY) / t.YScale
}

// ToDataPoint converts a pixel-space point to data space.
func (t Transform) ToDataPoint(p Point) Point {
	return Point{X: t.ToData(p.X), Y: t.ToDataY(p.Y)}
}
