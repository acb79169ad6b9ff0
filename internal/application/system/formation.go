package system

import (
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// MarchResult tells which movement a march step performed
type MarchResult int

const (
	MarchRight MarchResult = iota
	MarchLeft
	MarchDown
)

// String returns the string representation of the march result
func (m MarchResult) String() string {
	switch m {
	case MarchRight:
		return "Right"
	case MarchLeft:
		return "Left"
	case MarchDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Formation is the fixed rows x columns grid of aliens.
// Row 0 is the bottom (front) row. A nil cell is an empty slot; cells are
// never removed, so indices keep their meaning for the whole wave.
type Formation struct {
	grid [][]*entity.Alien

	gameWidth   float64
	defenseLine float64
	hSep        float64
	hWalk       float64
	vWalk       float64
	decay       float64

	stepCount    int
	stepInterval float64
}

// NewFormation fills the grid bottom-up, left-to-right. Images band in pairs
// of rows: row i uses palette[((i % rows) / 2) % len(palette)].
func NewFormation(cfg *config.WaveConfig) *Formation {
	a := cfg.Aliens
	realHSep := a.HSep + a.Width
	realVSep := a.VSep + a.Height
	topY := cfg.Game.Height - (a.Ceiling + a.Height/2)

	f := &Formation{
		grid:         make([][]*entity.Alien, a.Rows),
		gameWidth:    cfg.Game.Width,
		defenseLine:  cfg.Game.DefenseLine,
		hSep:         a.HSep,
		hWalk:        a.HWalk,
		vWalk:        a.VWalk,
		decay:        a.SpeedDecay,
		stepInterval: a.StepInterval,
	}

	y := topY - realVSep*float64(a.Rows-1)
	for row := 0; row < a.Rows; row++ {
		image := a.Images[((row%a.Rows)/2)%len(a.Images)]
		f.grid[row] = make([]*entity.Alien, a.Columns)
		x := a.HSep + a.Width/2
		for col := 0; col < a.Columns; col++ {
			f.grid[row][col] = entity.NewAlien(x, y, a.Width, a.Height, image)
			x += realHSep
		}
		y += realVSep
	}

	return f
}

// Rows returns the number of rows
func (f *Formation) Rows() int {
	return len(f.grid)
}

// Cols returns the number of columns
func (f *Formation) Cols() int {
	if len(f.grid) == 0 {
		return 0
	}
	return len(f.grid[0])
}

// At returns the alien at (row, col), or nil for an empty or out-of-range cell
func (f *Formation) At(row, col int) *entity.Alien {
	if row < 0 || row >= f.Rows() || col < 0 || col >= f.Cols() {
		return nil
	}
	return f.grid[row][col]
}

// Each calls fn for every live alien in row-major order
func (f *Formation) Each(fn func(row, col int, a *entity.Alien)) {
	for r, cells := range f.grid {
		for c, a := range cells {
			if a != nil {
				fn(r, c, a)
			}
		}
	}
}

// Count returns the number of live aliens
func (f *Formation) Count() int {
	n := 0
	f.Each(func(int, int, *entity.Alien) { n++ })
	return n
}

// IsEmpty returns true when every cell is empty
func (f *Formation) IsEmpty() bool {
	for _, cells := range f.grid {
		for _, a := range cells {
			if a != nil {
				return false
			}
		}
	}
	return true
}

// StepCount returns the number of drops performed.
// Its parity selects the sweep direction: even sweeps right, odd sweeps left.
func (f *Formation) StepCount() int {
	return f.stepCount
}

// StepInterval returns the current seconds between march steps
func (f *Formation) StepInterval() float64 {
	return f.stepInterval
}

// Rightmost returns the largest right edge of any live alien, scanning each
// row from its right end inward. Returns 0 when the formation is empty.
func (f *Formation) Rightmost() float64 {
	furthest := 0.0
	for _, cells := range f.grid {
		for c := len(cells) - 1; c >= 0; c-- {
			if a := cells[c]; a != nil {
				if a.Right() > furthest {
					furthest = a.Right()
				}
				break
			}
		}
	}
	return furthest
}

// Leftmost returns the smallest left edge of any live alien, scanning each
// row from its left end inward. Returns the game width when the formation is empty.
func (f *Formation) Leftmost() float64 {
	furthest := f.gameWidth
	for _, cells := range f.grid {
		for _, a := range cells {
			if a != nil {
				if a.Left() < furthest {
					furthest = a.Left()
				}
				break
			}
		}
	}
	return furthest
}

// March performs one step: a sweep in the current direction while the
// formation stays inside the game width, otherwise a drop that flips the
// direction for the next step.
func (f *Formation) March() MarchResult {
	if f.stepCount%2 == 0 {
		if f.Rightmost()+f.hSep < f.gameWidth {
			f.translate(f.hWalk, 0)
			return MarchRight
		}
	} else {
		if f.Leftmost()-f.hSep > 0 {
			f.translate(-f.hWalk, 0)
			return MarchLeft
		}
	}

	f.translate(0, -f.vWalk)
	f.stepCount++
	return MarchDown
}

func (f *Formation) translate(dx, dy float64) {
	f.Each(func(_, _ int, a *entity.Alien) {
		a.X += dx
		a.Y += dy
	})
}

// Breached returns true if any live alien's bottom edge is at or below the defense line
func (f *Formation) Breached() bool {
	breached := false
	f.Each(func(_, _ int, a *entity.Alien) {
		if a.Bottom()-f.defenseLine <= 0 {
			breached = true
		}
	})
	return breached
}

// Kill empties the cell and speeds up the march by the decay factor.
// Returns false, without decaying, if the cell was already empty.
func (f *Formation) Kill(row, col int) bool {
	if f.At(row, col) == nil {
		return false
	}
	f.grid[row][col] = nil
	f.stepInterval *= f.decay
	return true
}

// HitBy returns the first cell, in row-major order, whose alien collides with the bolt
func (f *Formation) HitBy(bolt *entity.Bolt) (row, col int, ok bool) {
	for r, cells := range f.grid {
		for c, a := range cells {
			if a != nil && a.Collides(bolt) {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Frontline returns the lowest-row live alien in a column, or nil if the column is empty
func (f *Formation) Frontline(col int) *entity.Alien {
	for row := 0; row < f.Rows(); row++ {
		if a := f.At(row, col); a != nil {
			return a
		}
	}
	return nil
}
