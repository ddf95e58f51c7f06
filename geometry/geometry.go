// Package geometry converts between the data space of a sampled curve and
// the pixel space of the surface it is drawn on.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalid is wrapped by every error describing a dataset that cannot be
// plotted.
var ErrInvalid = errors.New("invalid dataset")

// Point is one sample of a curve, or a position on screen.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect describes four per-side distances. Chart margins use pixels and
// curve padding uses data units.
type Rect struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// BoundBox is an axis-aligned box spanning [X1,X2] x [Y1,Y2].
type BoundBox struct {
	X1, Y1, X2, Y2 float64
}

func (b BoundBox) Width() float64 {
	return b.X2 - b.X1
}

func (b BoundBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Center returns the midpoint of the box.
func (b BoundBox) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// CurveGizmo returns the padded data-space bounding box of points. The
// horizontal extent is taken from the first and last points, which callers
// keep sorted by X. The vertical extent is found on a sorted copy so that
// points keeps its drawing order.
func CurveGizmo(points []Point, padding Rect) BoundBox {
	if len(points) == 0 {
		return BoundBox{}
	}
	byY := slices.Clone(points)
	slices.SortFunc(byY, func(a, b Point) int {
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	return BoundBox{
		X1: points[0].X - padding.Left,
		X2: points[len(points)-1].X + padding.Right,
		Y1: byY[0].Y - padding.Bottom,
		Y2: byY[len(byY)-1].Y + padding.Top,
	}
}

// ChartGizmo returns the pixel-space drawing area of a container once the
// chart margins have been removed.
func ChartGizmo(width, height float64, position Rect) BoundBox {
	return BoundBox{
		X1: position.Left,
		Y1: position.Top,
		X2: width - position.Right,
		Y2: height - position.Bottom,
	}
}

// Validate reports whether points can be plotted with the given padding.
// The returned error wraps ErrInvalid.
func Validate(points []Point, padding Rect) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalid, len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: point %d (%v, %v) is not finite", ErrInvalid, i, p.X, p.Y)
		}
		if i > 0 && p.X <= points[i-1].X {
			return fmt.Errorf("%w: point %d has x=%v, not greater than previous x=%v", ErrInvalid, i, p.X, points[i-1].X)
		}
	}
	box := CurveGizmo(points, padding)
	if !(box.Width() > 0) || !isFinite(box.Width()) {
		return fmt.Errorf("%w: degenerate x range [%v, %v]", ErrInvalid, box.X1, box.X2)
	}
	if !(box.Height() > 0) || !isFinite(box.Height()) {
		return fmt.Errorf("%w: degenerate y range [%v, %v]", ErrInvalid, box.Y1, box.Y2)
	}
	return nil
}

// Trace returns the y value of the polyline through points at x. Points
// must be sorted by X. If x is NaN or falls outside the first and last
// samples, ok is false.
func Trace(points []Point, x float64) (y float64, ok bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if x < a.X || x > b.X {
			continue
		}
		if b.X == a.X {
			return a.Y, true
		}
		return a.Y + (x-a.X)*(b.Y-a.Y)/(b.X-a.X), true
	}
	return 0, false
}

// Progress returns how far x lies along the horizontal extent of points,
// as a fraction of the distance from the first to the last sample.
func Progress(points []Point, x float64) float64 {
	if len(points) < 2 {
		return 0
	}
	first, last := points[0].X, points[len(points)-1].X
	return (x - first) / (last - first)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
