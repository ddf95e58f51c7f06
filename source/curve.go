// Package source loads sampled curves from CSV files and follows the files
// as they are rewritten.
package source

import (
	"slices"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

// Curve is one sampled curve along with the names of its axes and the x at
// which the reference marker belongs.
type Curve struct {
	XName, YName string
	Points       []geometry.Point
	// Current is only meaningful when HasCurrent is set.
	Current    float64
	HasCurrent bool
}

// Insert adds a sample to the end of the curve. In the event that the
// sample's X does not lie strictly after the last sample, nothing is added
// and the method returns false. Otherwise, the method returns true.
func (c *Curve) Insert(p geometry.Point) (inserted bool) {
	if len(c.Points) > 0 && c.Points[len(c.Points)-1].X >= p.X {
		return false
	}
	c.Points = append(c.Points, p)
	return true
}

// CurrentOr returns the curve's current x, or fallback when the file did
// not set one.
func (c Curve) CurrentOr(fallback float64) float64 {
	if c.HasCurrent {
		return c.Current
	}
	return fallback
}

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	c.Points = slices.Clone(c.Points)
	return c
}
