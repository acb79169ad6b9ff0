package entity

// Alien is a single member of the alien formation
type Alien struct {
	Rect
	Image string // Sprite key, shared by two adjacent rows
}

// NewAlien creates an alien centred at (x, y)
func NewAlien(x, y, width, height float64, image string) *Alien {
	return &Alien{
		Rect:  Rect{X: x, Y: y, Width: width, Height: height},
		Image: image,
	}
}

// Collides reports whether a bolt overlaps the alien.
// Anything that is not a *Bolt never collides.
func (a *Alien) Collides(c Collider) bool {
	bolt, ok := c.(*Bolt)
	if !ok || bolt == nil {
		return false
	}
	return a.Overlaps(bolt.Rect)
}

// Heart is one remaining life shown in the HUD
type Heart struct {
	Rect
	Frame int
}

// NewHeart creates a heart centred at (x, y)
func NewHeart(x, y, width, height float64) *Heart {
	return &Heart{Rect: Rect{X: x, Y: y, Width: width, Height: height}}
}
