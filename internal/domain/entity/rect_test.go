package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 100, Y: 50, Width: 40, Height: 20}

	assert.Equal(t, 80.0, r.Left())
	assert.Equal(t, 120.0, r.Right())
	assert.Equal(t, 60.0, r.Top())
	assert.Equal(t, 40.0, r.Bottom())
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 4}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"centre", 0, 0, true},
		{"right edge", 5, 0, true},
		{"top-left corner", -5, 2, true},
		{"just outside right", 5.01, 0, false},
		{"just below", 0, -2.01, false},
		{"far away", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.px, tt.py))
		})
	}
}

func TestRect_Corners(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 4, Height: 2}

	corners := r.Corners()

	assert.Equal(t, Point{8, 11}, corners[0])
	assert.Equal(t, Point{12, 11}, corners[1])
	assert.Equal(t, Point{12, 9}, corners[2])
	assert.Equal(t, Point{8, 9}, corners[3])
}

func TestRect_Overlaps(t *testing.T) {
	target := Rect{X: 100, Y: 100, Width: 30, Height: 30}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"bolt inside", Rect{X: 100, Y: 100, Width: 4, Height: 16}, true},
		{"top corner pokes in from below", Rect{X: 100, Y: 80, Width: 4, Height: 16}, true},
		{"bottom corner touches top edge", Rect{X: 100, Y: 123, Width: 4, Height: 16}, true},
		{"just clear of top", Rect{X: 100, Y: 123.5, Width: 4, Height: 16}, false},
		{"to the side", Rect{X: 200, Y: 100, Width: 4, Height: 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, target.Overlaps(tt.other))
		})
	}
}
