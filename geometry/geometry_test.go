package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rateCurve = []Point{{0, 0}, {0.5, 0.1}, {1, 0.5}}

func TestTrace(t *testing.T) {
	type testcase struct {
		name string
		x    float64
		y    float64
		ok   bool
	}
	for _, tc := range []testcase{
		{name: "first sample", x: 0, y: 0, ok: true},
		{name: "inside first segment", x: 0.25, y: 0.05, ok: true},
		{name: "shared sample", x: 0.5, y: 0.1, ok: true},
		{name: "inside last segment", x: 0.75, y: 0.3, ok: true},
		{name: "last sample", x: 1, y: 0.5, ok: true},
		{name: "right of domain", x: 1.5, ok: false},
		{name: "left of domain", x: -0.01, ok: false},
		{name: "not a number", x: math.NaN(), ok: false},
		{name: "infinite", x: math.Inf(1), ok: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			y, ok := Trace(rateCurve, tc.x)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.y, y, 1e-12)
			}
		})
	}
}

func TestTraceMatchesSegmentInterpolation(t *testing.T) {
	points := []Point{{-3, 2}, {-1, -4}, {2, 8}, {10, 8}, {11, -1}}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		for _, frac := range []float64{0, 0.1, 0.33, 0.5, 0.9} {
			x := a.X + (b.X-a.X)*frac
			y, ok := Trace(points, x)
			require.True(t, ok, "x=%v", x)
			assert.InDelta(t, a.Y+(b.Y-a.Y)*frac, y, 1e-9, "x=%v", x)
		}
	}
}

func TestCurveGizmo(t *testing.T) {
	points := []Point{{1, 3}, {2, -1}, {4, 7}, {6, 2}}
	padding := Rect{Left: 0.5, Right: 1, Top: 2, Bottom: 0.25}
	box := CurveGizmo(points, padding)
	assert.Equal(t, BoundBox{X1: 0.5, X2: 7, Y1: -1.25, Y2: 9}, box)
	// The caller's ordering must survive the min/max search.
	assert.Equal(t, []Point{{1, 3}, {2, -1}, {4, 7}, {6, 2}}, points)
}

func TestChartGizmo(t *testing.T) {
	margins := Rect{Left: 60, Right: 20, Top: 20, Bottom: 50}
	assert.Equal(t, BoundBox{X1: 60, Y1: 20, X2: 380, Y2: 250}, ChartGizmo(400, 300, margins))
	assert.Equal(t, 780.0, ChartGizmo(800, 300, margins).X2)
}

func TestTransformCorners(t *testing.T) {
	chart := ChartGizmo(400, 300, Rect{Left: 60, Right: 20, Top: 20, Bottom: 50})
	curve := CurveGizmo(rateCurve, Rect{})
	tr := NewTransform(chart, curve)

	lowerLeft := tr.ToScreen(Point{curve.X1, curve.Y1})
	assert.InDelta(t, chart.X1, lowerLeft.X, 1e-9)
	assert.InDelta(t, chart.Y2, lowerLeft.Y, 1e-9)

	upperRight := tr.ToScreen(Point{curve.X2, curve.Y2})
	assert.InDelta(t, chart.X2, upperRight.X, 1e-9)
	assert.InDelta(t, chart.Y1, upperRight.Y, 1e-9)
}

func TestTransformRoundTrip(t *testing.T) {
	type testcase struct {
		name    string
		chart   BoundBox
		points  []Point
		padding Rect
	}
	for _, tc := range []testcase{
		{
			name:   "rate curve",
			chart:  ChartGizmo(400, 300, Rect{Left: 60, Right: 20, Top: 20, Bottom: 50}),
			points: rateCurve,
		},
		{
			name:    "padded negative data",
			chart:   ChartGizmo(1024, 768, Rect{Left: 5, Right: 5, Top: 5, Bottom: 5}),
			points:  []Point{{-100, -5}, {-50, 20}, {300, 1e4}},
			padding: Rect{Left: 10, Right: 10, Top: 100, Bottom: 3},
		},
		{
			name:   "tiny range",
			chart:  BoundBox{X1: 0, Y1: 0, X2: 10, Y2: 10},
			points: []Point{{1e-6, 1e-9}, {2e-6, 3e-9}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, Validate(tc.points, tc.padding))
			tr := NewTransform(tc.chart, CurveGizmo(tc.points, tc.padding))
			for _, p := range append(tc.points, Point{0, 0}, Point{-7.5, 42}) {
				back := tr.ToDataPoint(tr.ToScreen(p))
				tol := 1e-9 * max(1, math.Abs(p.X), math.Abs(p.Y))
				assert.InDelta(t, p.X, back.X, tol)
				assert.InDelta(t, p.Y, back.Y, tol)
				assert.InDelta(t, p.X, tr.ToData(tr.ToScreen(p).X), tol)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type testcase struct {
		name    string
		points  []Point
		padding Rect
		valid   bool
	}
	for _, tc := range []testcase{
		{name: "valid", points: rateCurve, valid: true},
		{name: "empty", points: nil},
		{name: "single point", points: []Point{{0.5, 0.1}}},
		{name: "flat y", points: []Point{{0, 1}, {1, 1}}},
		{name: "flat y rescued by padding", points: []Point{{0, 1}, {1, 1}}, padding: Rect{Top: 0.1}, valid: true},
		{name: "shared x", points: []Point{{0, 0}, {0, 1}}},
		{name: "descending x", points: []Point{{1, 0}, {0, 1}}},
		{name: "nan", points: []Point{{0, 0}, {1, math.NaN()}}},
		{name: "inf", points: []Point{{0, 0}, {math.Inf(1), 1}}},
		{name: "padding collapses x", points: rateCurve, padding: Rect{Left: -0.5, Right: -0.5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.points, tc.padding)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalid), "expected ErrInvalid, got %v", err)
		})
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.5, Progress(rateCurve, 0.5))
	assert.Equal(t, 0.0, Progress(rateCurve, 0))
	assert.Equal(t, 1.0, Progress(rateCurve, 1))
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Steps(0.0, 1.0, 5))
	assert.Equal(t, []float64{3}, Steps(3.0, 9.0, 1))
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 5))
}
