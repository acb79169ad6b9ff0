package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShip_Collides(t *testing.T) {
	ship := NewShip(400, 32, 44, 44)

	hit, err := NewBolt(400, 60, 4, 16, 15, DirDown)
	require.NoError(t, err)
	assert.True(t, ship.Collides(hit), "bottom corners of the bolt are inside the ship")

	miss, err := NewBolt(500, 60, 4, 16, 15, DirDown)
	require.NoError(t, err)
	assert.False(t, ship.Collides(miss))
}

func TestShip_Collides_FailsClosed(t *testing.T) {
	ship := NewShip(400, 32, 44, 44)

	// A rectangle in the same spot is not a bolt
	assert.False(t, ship.Collides(Rect{X: 400, Y: 32, Width: 10, Height: 10}))
	assert.False(t, ship.Collides(NewAlien(400, 32, 33, 33, "alien1")))

	var nilBolt *Bolt
	assert.False(t, ship.Collides(nilBolt))
}

func TestShip_Clone(t *testing.T) {
	ship := NewShip(100, 32, 44, 44)
	ship.Frame = 3

	snap := ship.Clone()
	ship.X = 200
	ship.Frame = 7

	assert.Equal(t, 100.0, snap.X)
	assert.Equal(t, 3, snap.Frame)
	assert.True(t, ship.Destroyed())
	assert.False(t, snap.Destroyed())
}

func TestAlien_Collides(t *testing.T) {
	alien := NewAlien(100, 500, 33, 33, "alien2")
	assert.Equal(t, "alien2", alien.Image)

	hit, err := NewBolt(110, 480, 4, 16, 15, DirUp)
	require.NoError(t, err)
	assert.True(t, alien.Collides(hit))

	miss, err := NewBolt(100, 400, 4, 16, 15, DirUp)
	require.NoError(t, err)
	assert.False(t, alien.Collides(miss))

	assert.False(t, alien.Collides(NewShip(100, 500, 44, 44)))
}

func TestNewHeart(t *testing.T) {
	heart := NewHeart(784, 684, 32, 32)

	assert.Equal(t, 784.0, heart.X)
	assert.Equal(t, 684.0, heart.Y)
	assert.Equal(t, 0, heart.Frame)
}
