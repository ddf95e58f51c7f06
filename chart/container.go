package chart

import (
	"git.sr.ht/~whereswaldon/ratecurve/geometry"
	"git.sr.ht/~whereswaldon/ratecurve/scene"
	"git.sr.ht/~whereswaldon/ratecurve/tooltip"
)

// PointerKind distinguishes the pointer notifications a widget reacts to.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer notification in the container's local pixel
// space.
type PointerEvent struct {
	Kind     PointerKind
	Position geometry.Point
}

// View is what a mounted widget hands to its container to draw: the scene
// graph and the floating tooltips, which are drawn above the scene at their
// own viewport positions.
type View interface {
	Scene() *scene.Scene
	Tooltips() []*tooltip.Tooltip
}

// Container is the surface a widget is mounted into. All callbacks must be
// delivered on the goroutine that calls Mount, Unmount and Update.
type Container interface {
	// Size returns the container's current size in pixels.
	Size() (width, height float64)
	// Origin returns the container's top-left corner in viewport
	// coordinates.
	Origin() geometry.Point
	Attach(View)
	Detach(View)
	// ObserveSize registers fn to be called with the new size whenever the
	// container is resized. Calling the returned cancel func unregisters fn
	// before it returns.
	ObserveSize(fn func(width, height float64)) (cancel func())
	// ObservePointer registers fn for pointer moves and leaves over the
	// container, with the same cancellation contract as ObserveSize.
	ObservePointer(fn func(PointerEvent)) (cancel func())
}
