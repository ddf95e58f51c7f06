// Package scene holds a small retained vector scene graph that a chart
// builds once and then mutates in place, along with a Gio painter for it.
package scene

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/unit"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

// Kind identifies the shape a Node draws.
type Kind uint8

const (
	// Line is a straight stroke from Points[0] to Points[1].
	Line Kind = iota
	// Polyline is a connected stroke through all Points.
	Polyline
	// Circle is a filled disc centered on Points[0].
	Circle
	// Label is a run of text anchored at Points[0].
	Label
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Polyline:
		return "polyline"
	case Circle:
		return "circle"
	case Label:
		return "label"
	default:
		return "unknown"
	}
}

// Align positions a label relative to its anchor along one axis.
type Align uint8

const (
	Start Align = iota
	Middle
	End
)

// Node is one drawable element. Nodes are owned by the Scene that created
// them and are mutated in place between frames.
type Node struct {
	Kind   Kind
	Hidden bool
	Color  color.NRGBA
	Points []f32.Point

	// Stroke width for lines and polylines.
	Width  float32
	Dashed bool

	Radius float32

	Text     string
	TextSize unit.Sp
	Font     font.Font
	HAlign   Align
	VAlign   Align
	// Rotation in radians around the anchor, clockwise on screen.
	Rotation float32
}

// Anchor returns the first point of the node.
func (n *Node) Anchor() f32.Point {
	if len(n.Points) == 0 {
		return f32.Point{}
	}
	return n.Points[0]
}

// MoveTo replaces the node's points with a single anchor.
func (n *Node) MoveTo(p geometry.Point) {
	n.Points = append(n.Points[:0], Pt(p))
}

// SetSegment replaces the node's points with the segment a-b.
func (n *Node) SetSegment(a, b geometry.Point) {
	n.Points = append(n.Points[:0], Pt(a), Pt(b))
}

// Scene is an ordered collection of nodes. Nodes are painted in the order
// they were added.
type Scene struct {
	nodes []*Node
}

func New() *Scene {
	return &Scene{}
}

// Add appends a copy of n to the scene and returns the scene's node.
func (s *Scene) Add(n Node) *Node {
	node := &n
	s.nodes = append(s.nodes, node)
	return node
}

// Nodes returns the scene's nodes in paint order.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Visible counts the nodes of the given kind that are not hidden.
func (s *Scene) Visible(kind Kind) int {
	n := 0
	for _, node := range s.nodes {
		if node.Kind == kind && !node.Hidden {
			n++
		}
	}
	return n
}

// Pt converts a pixel-space geometry point to a Gio point.
func Pt(p geometry.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}
