package entity

import (
	"errors"
	"fmt"
)

// SpriteFrames is the number of frames in the ship and heart sprite sheets.
// The last frame of the ship sheet is the fully destroyed sprite.
const SpriteFrames = 8

var (
	// ErrInvalidDirection is returned for a bolt direction other than up or down
	ErrInvalidDirection = errors.New("invalid bolt direction")
	// ErrInvalidSpeed is returned for a non-positive bolt speed
	ErrInvalidSpeed = errors.New("invalid bolt speed")
)

// Direction is the travel direction of a bolt
type Direction int

const (
	DirNone Direction = iota
	DirUp             // Fired by the ship
	DirDown           // Fired by an alien
)

// ParseDirection maps a direction token ("up" or "down") to a Direction
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return DirNone, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
	}
}

// String returns the direction token
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Collider is anything with a world-space bounding rectangle
type Collider interface {
	Bounds() Rect
}
