package entity

// Point is a world-space coordinate
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its centre.
// World space has its origin at the bottom-left with y growing upward.
type Rect struct {
	X, Y          float64 // Centre
	Width, Height float64
}

// Left returns the x of the left edge
func (r Rect) Left() float64 { return r.X - r.Width/2 }

// Right returns the x of the right edge
func (r Rect) Right() float64 { return r.X + r.Width/2 }

// Top returns the y of the top edge
func (r Rect) Top() float64 { return r.Y + r.Height/2 }

// Bottom returns the y of the bottom edge
func (r Rect) Bottom() float64 { return r.Y - r.Height/2 }

// Bounds returns the rectangle itself, so anything embedding Rect is a Collider
func (r Rect) Bounds() Rect { return r }

// Contains reports whether the point lies within half-width and half-height
// of the centre on both axes. Points on the edge are inside.
func (r Rect) Contains(px, py float64) bool {
	dx := px - r.X
	dy := py - r.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= r.Width/2 && dy <= r.Height/2
}

// Corners returns the four corners: top-left, top-right, bottom-right, bottom-left
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Left(), r.Top()},
		{r.Right(), r.Top()},
		{r.Right(), r.Bottom()},
		{r.Left(), r.Bottom()},
	}
}

// Overlaps reports whether any corner of other lies inside r
func (r Rect) Overlaps(other Rect) bool {
	for _, p := range other.Corners() {
		if r.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}
