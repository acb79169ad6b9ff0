package entity

import "fmt"

// Bolt is a laser bolt fired by the ship or by an alien.
// Velocity and ownership are fixed at construction.
type Bolt struct {
	Rect
	velocity float64
	isPlayer bool
}

// NewBolt creates a bolt centred at (x, y). DirUp makes a player bolt moving
// toward increasing y; DirDown makes an alien bolt moving the other way.
func NewBolt(x, y, width, height, speed float64, dir Direction) (*Bolt, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidSpeed, speed)
	}

	b := &Bolt{Rect: Rect{X: x, Y: y, Width: width, Height: height}}
	switch dir {
	case DirUp:
		b.velocity = speed
		b.isPlayer = true
	case DirDown:
		b.velocity = -speed
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	return b, nil
}

// Velocity returns the signed vertical velocity per frame
func (b *Bolt) Velocity() float64 {
	return b.velocity
}

// IsPlayerBolt returns true if the bolt was fired by the ship
func (b *Bolt) IsPlayerBolt() bool {
	return b.isPlayer
}

// Advance moves the bolt by its velocity. Called once per frame.
func (b *Bolt) Advance() {
	b.Y += b.velocity
}

// IsExpired returns true once the top edge is above gameHeight or the bottom
// edge is below zero. Touching either boundary exactly is not expired.
func (b *Bolt) IsExpired(gameHeight float64) bool {
	return b.Top() > gameHeight || b.Bottom() < 0
}
