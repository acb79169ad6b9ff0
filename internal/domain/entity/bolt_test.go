package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirUp, dir)

	dir, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirDown, dir)

	dir, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, DirNone, dir)
}

func TestNewBolt(t *testing.T) {
	up, err := NewBolt(100, 200, 4, 16, 15, DirUp)
	require.NoError(t, err)
	assert.True(t, up.IsPlayerBolt())
	assert.Equal(t, 15.0, up.Velocity())
	assert.Equal(t, 100.0, up.X)
	assert.Equal(t, 200.0, up.Y)

	down, err := NewBolt(100, 200, 4, 16, 15, DirDown)
	require.NoError(t, err)
	assert.False(t, down.IsPlayerBolt())
	assert.Equal(t, -15.0, down.Velocity())
}

func TestNewBolt_Preconditions(t *testing.T) {
	_, err := NewBolt(0, 0, 4, 16, 15, DirNone)
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = NewBolt(0, 0, 4, 16, 15, Direction(42))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = NewBolt(0, 0, 4, 16, 0, DirUp)
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestBolt_Advance(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown} {
		t.Run(dir.String(), func(t *testing.T) {
			b, err := NewBolt(50, 300, 4, 16, 15, dir)
			require.NoError(t, err)

			before := b.Y
			b.Advance()

			assert.Equal(t, b.Velocity(), b.Y-before)
			if b.IsPlayerBolt() {
				assert.Greater(t, b.Y, before)
			} else {
				assert.Less(t, b.Y, before)
			}
			assert.Equal(t, 50.0, b.X)
		})
	}
}

func TestBolt_IsExpired(t *testing.T) {
	const gameHeight = 700.0

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"middle of screen", 350, false},
		{"top edge exactly at height", gameHeight - 8, false},
		{"top edge above height", gameHeight - 7.9, true},
		{"bottom edge exactly at zero", 8, false},
		{"bottom edge below zero", 7.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBolt(10, tt.y, 4, 16, 15, DirUp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.IsExpired(gameHeight))
		})
	}
}
