package system

import (
	"errors"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// ErrFormationEmpty is returned when an alien bolt is requested from an empty formation
var ErrFormationEmpty = errors.New("no live alien can fire")

// Kill records an alien removed by a player bolt
type Kill struct {
	Row, Col int
}

// Resolution reports what one bolt update pass resolved
type Resolution struct {
	Kills   []Kill
	ShipHit bool
	Expired int
}

// BoltManager owns every bolt in flight
type BoltManager struct {
	bolts []*entity.Bolt

	width      float64
	height     float64
	speed      float64
	gameHeight float64
	shipHeight float64
	alienHalfH float64
}

// NewBoltManager creates an empty bolt manager
func NewBoltManager(cfg *config.WaveConfig) *BoltManager {
	return &BoltManager{
		bolts:      make([]*entity.Bolt, 0, 16),
		width:      cfg.Bolt.Width,
		height:     cfg.Bolt.Height,
		speed:      cfg.Bolt.Speed,
		gameHeight: cfg.Game.Height,
		shipHeight: cfg.Ship.Height,
		alienHalfH: cfg.Aliens.Height / 2,
	}
}

// Bolts returns the bolts in flight
func (m *BoltManager) Bolts() []*entity.Bolt {
	return m.bolts
}

// Len returns the number of bolts in flight
func (m *BoltManager) Len() int {
	return len(m.bolts)
}

// HasPlayerBolt returns true if a ship bolt is in flight
func (m *BoltManager) HasPlayerBolt() bool {
	for _, b := range m.bolts {
		if b.IsPlayerBolt() {
			return true
		}
	}
	return false
}

// Clear removes every bolt
func (m *BoltManager) Clear() {
	clear(m.bolts)
	m.bolts = m.bolts[:0]
}

// FirePlayer spawns a bolt just above the ship's nose.
// Only one player bolt may be in flight; returns false if none was fired.
func (m *BoltManager) FirePlayer(ship *entity.Ship) (bool, error) {
	if ship == nil || m.HasPlayerBolt() {
		return false, nil
	}

	y := ship.Y + m.shipHeight/2 + m.height/2
	bolt, err := entity.NewBolt(ship.X, y, m.width, m.height, m.speed, entity.DirUp)
	if err != nil {
		return false, err
	}

	m.bolts = append(m.bolts, bolt)
	return true, nil
}

// FireAlien spawns a bolt just below the frontline alien of a random column,
// re-rolling until it finds a column with a live alien.
func (m *BoltManager) FireAlien(f *Formation, rng Rand) (*entity.Bolt, error) {
	if f.IsEmpty() {
		return nil, ErrFormationEmpty
	}

	var shooter *entity.Alien
	for shooter == nil {
		shooter = f.Frontline(rng.Intn(f.Cols()))
	}

	y := shooter.Y - m.alienHalfH - m.height/2
	bolt, err := entity.NewBolt(shooter.X, y, m.width, m.height, m.speed, entity.DirDown)
	if err != nil {
		return nil, err
	}

	m.bolts = append(m.bolts, bolt)
	return bolt, nil
}

// Update advances every bolt, then resolves each one in a single pass with
// precedence expiry, alien hit, ship hit. Player bolts are only tested
// against aliens and alien bolts only against the ship. A nil ship is never
// hit, and the ship is hit at most once per pass.
func (m *BoltManager) Update(f *Formation, ship *entity.Ship) Resolution {
	for _, b := range m.bolts {
		b.Advance()
	}

	var res Resolution
	kept := m.bolts[:0]
	for _, b := range m.bolts {
		switch {
		case b.IsExpired(m.gameHeight):
			res.Expired++
			continue
		case b.IsPlayerBolt():
			if row, col, ok := f.HitBy(b); ok {
				f.Kill(row, col)
				res.Kills = append(res.Kills, Kill{Row: row, Col: col})
				continue
			}
		case ship != nil && !res.ShipHit && ship.Collides(b):
			res.ShipHit = true
			continue
		}
		kept = append(kept, b)
	}

	clear(m.bolts[len(kept):])
	m.bolts = kept
	return res
}
