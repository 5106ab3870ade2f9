// Package placement keeps a tooltip inside the visible window.
//
// The tooltip leads the pointer by a configured offset. When that would push
// its far edge past the viewport, it flips to trail the pointer instead:
//
//	        pointer                      pointer
//	           +--[offset]--+-----+         +-----+ <- flipped
//	           |            | tip |   tip   |
//
// Only the far edges are guarded. A flip close to the near edge can still
// produce a negative coordinate.
package placement

// Point is a page-relative coordinate.
type Point struct {
	X, Y float64
}

// Add returns p shifted by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is the outer size of the tooltip.
type Size struct {
	W, H float64
}

// Offset is the gap between pointer and tooltip.
type Offset struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// DefaultOffset is the gap used when none is configured.
var DefaultOffset = Offset{X: 10, Y: 20}

// Viewport is the visible window and how far the page is scrolled.
type Viewport struct {
	Width, Height    float64
	ScrollX, ScrollY float64
}

// Placement is the outcome of Clamp.
type Placement struct {
	// Point is where the tooltip's top-left corner goes.
	Point Point
	// Anchor is the position state before the offset is added.
	Anchor Point

	FlippedX, FlippedY bool
}

// Anchor computes the position state for pointer: the pointer itself, moved
// back by the tooltip size plus offset on every axis where the tooltip would
// otherwise overflow the far edge of the viewport.
func Anchor(pointer Point, tip Size, vp Viewport, off Offset) (anchor Point, flippedX, flippedY bool) {
	anchor = pointer

	requiredW := tip.W + off.X
	requiredH := tip.H + off.Y

	if pointer.X-vp.ScrollX > vp.Width-requiredW {
		anchor.X -= requiredW
		flippedX = true
	}
	if pointer.Y-vp.ScrollY > vp.Height-requiredH {
		anchor.Y -= requiredH
		flippedY = true
	}
	return anchor, flippedX, flippedY
}

// Clamp places a tooltip of size tip next to pointer. The offset is added on
// top of the anchor, so it is a lead gap when not flipped and cancels out of
// the flip subtraction when flipped.
func Clamp(pointer Point, tip Size, vp Viewport, off Offset) Placement {
	anchor, fx, fy := Anchor(pointer, tip, vp, off)
	return Placement{
		Point:    anchor.Add(off),
		Anchor:   anchor,
		FlippedX: fx,
		FlippedY: fy,
	}
}
