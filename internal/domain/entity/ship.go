package entity

// Ship is the player ship
type Ship struct {
	Rect
	Frame int // Sprite frame, SpriteFrames-1 is fully destroyed
}

// NewShip creates a ship centred at (x, y)
func NewShip(x, y, width, height float64) *Ship {
	return &Ship{Rect: Rect{X: x, Y: y, Width: width, Height: height}}
}

// Collides reports whether a bolt overlaps the ship.
// Anything that is not a *Bolt never collides.
func (s *Ship) Collides(c Collider) bool {
	bolt, ok := c.(*Bolt)
	if !ok || bolt == nil {
		return false
	}
	return s.Overlaps(bolt.Rect)
}

// Clone returns a copy of the ship, used as the revival snapshot
func (s *Ship) Clone() *Ship {
	c := *s
	return &c
}

// Destroyed returns true when the ship shows its last sprite frame
func (s *Ship) Destroyed() bool {
	return s.Frame >= SpriteFrames-1
}
