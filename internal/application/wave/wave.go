// Package wave runs one level of the game: a single alien formation and
// one ship lifecycle, advanced once per frame until the wave is won or lost.
package wave

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// ErrNilRand is returned when a wave is created without a random source
var ErrNilRand = errors.New("wave needs a random source")

// View receives the draw calls of one frame
type View interface {
	DrawAlien(a *entity.Alien)
	DrawShip(s *entity.Ship)
	DrawDefenseLine(y, width float64)
	DrawBolt(b *entity.Bolt)
	DrawHeart(h *entity.Heart)
}

// Wave owns every entity of the level. Nothing outside holds a writable
// reference; callers drive it through Update and read it through the queries.
type Wave struct {
	cfg config.WaveConfig
	rng system.Rand

	ship      *entity.Ship
	formation *system.Formation
	bolts     *system.BoltManager
	hearts    *system.HeartBar
	lives     int

	elapsed   float64 // Since the last march step
	heartIdle float64 // Since the last heart pulse
	cadence   int     // March steps since the last alien bolt
	threshold int     // Cadence needed before the next alien bolt

	shipDestroyed bool
	snapshot      *entity.Ship
	destroyAnim   *system.ShipDestroyAnimator
	heartAnim     *system.HeartPulseAnimator
	overLogged    bool

	// Event hooks, all optional
	OnPlayerFire    func()
	OnAlienFire     func()
	OnAlienKilled   func(row, col int)
	OnShipHit       func()
	OnShipDestroyed func(livesLeft int)
}

// New creates a wave with a full formation and a ship at the bottom centre
func New(cfg *config.WaveConfig, rng system.Rand) (*Wave, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new wave: %w: nil config", config.ErrInvalidConfig)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new wave: %w", err)
	}

	w := &Wave{
		cfg:       *cfg,
		rng:       rng,
		ship:      entity.NewShip(cfg.Game.Width/2, cfg.Ship.Bottom, cfg.Ship.Width, cfg.Ship.Height),
		formation: system.NewFormation(cfg),
		bolts:     system.NewBoltManager(cfg),
		hearts:    system.NewHeartBar(cfg, cfg.Ship.Lives),
		lives:     cfg.Ship.Lives,
	}
	w.threshold = w.rollThreshold()

	log.Printf("[wave] started: %dx%d aliens, %d lives", w.formation.Rows(), w.formation.Cols(), w.lives)
	return w, nil
}

func (w *Wave) rollThreshold() int {
	return system.RollInclusive(w.rng, 1, w.cfg.Bolt.MaxRate)
}

// Update advances the wave by one frame of dt seconds.
//
// A dead ship with lives left is revived first and plays on the same frame.
// Then exactly one of the destruction animation or live gameplay runs; the
// formation timer, bolts and hearts are advanced every frame.
// An animator fault drops that animator and is returned after the frame
// has finished.
func (w *Wave) Update(input system.InputState, dt float64) error {
	var errs []error

	if w.ship == nil && w.lives > 0 && w.snapshot != nil {
		w.revive()
	}

	switch {
	case w.destroyAnim != nil:
		if err := w.stepDestroy(dt); err != nil {
			errs = append(errs, err)
		}
	case w.shipDestroyed:
		w.destroyAnim = system.NewShipDestroyAnimator(w.ship, w.cfg.Ship.DeathSpeed)
		w.snapshot = w.destroyAnim.Snapshot()
	default:
		if err := w.play(input); err != nil {
			errs = append(errs, err)
		}
	}

	w.elapsed += dt
	w.heartIdle += dt
	if w.elapsed > w.formation.StepInterval() {
		w.formation.March()
		w.cadence++
		if w.formation.Breached() {
			w.breach()
		}
		w.elapsed = dt
	}

	w.resolveBolts()

	if err := w.pulseHearts(dt); err != nil {
		errs = append(errs, err)
	}

	if !w.overLogged && w.IsWaveOver() {
		w.overLogged = true
		log.Printf("[wave] over: won=%v lives=%d aliens=%d", w.Won(), w.lives, w.formation.Count())
	}

	return errors.Join(errs...)
}

func (w *Wave) revive() {
	w.ship = w.snapshot
	w.ship.Frame = 0
	w.snapshot = nil
	w.shipDestroyed = false
}

func (w *Wave) stepDestroy(dt float64) error {
	res, err := w.destroyAnim.Step(dt)
	if err != nil {
		w.destroyAnim = nil
		return fmt.Errorf("ship destruction: %w", err)
	}
	if res != system.StepDone {
		return nil
	}

	w.destroyAnim = nil
	w.ship = nil
	w.shipDestroyed = false
	if w.lives > 0 {
		w.lives--
	}
	log.Printf("[wave] ship destroyed, %d lives left", w.lives)
	if w.OnShipDestroyed != nil {
		w.OnShipDestroyed(w.lives)
	}
	return nil
}

func (w *Wave) play(input system.InputState) error {
	if w.ship != nil {
		half := w.cfg.Ship.Width / 2
		x := w.ship.X + float64(input.Horizontal())*w.cfg.Ship.Movement
		w.ship.X = min(max(x, half), w.cfg.Game.Width-half)
	}

	if input.Fire {
		fired, err := w.bolts.FirePlayer(w.ship)
		if err != nil {
			return fmt.Errorf("player fire: %w", err)
		}
		if fired && w.OnPlayerFire != nil {
			w.OnPlayerFire()
		}
	}

	if w.cadence > w.threshold && !w.formation.IsEmpty() {
		if _, err := w.bolts.FireAlien(w.formation, w.rng); err != nil {
			return fmt.Errorf("alien fire: %w", err)
		}
		w.cadence = 0
		w.threshold = w.rollThreshold()
		if w.OnAlienFire != nil {
			w.OnAlienFire()
		}
	}

	return nil
}

// breach ends the wave at once: the ship is lost along with every life
func (w *Wave) breach() {
	log.Printf("[wave] defense line breached")
	w.ship = nil
	w.snapshot = nil
	w.lives = 0
	w.hearts.Clear()
	w.destroyAnim = nil
	w.shipDestroyed = false
}

func (w *Wave) resolveBolts() {
	// A ship that is already going down cannot be hit again
	target := w.ship
	if w.shipDestroyed {
		target = nil
	}

	res := w.bolts.Update(w.formation, target)

	if res.ShipHit {
		w.shipDestroyed = true
		w.hearts.Pop()
		if w.OnShipHit != nil {
			w.OnShipHit()
		}
	}
	for _, k := range res.Kills {
		if w.OnAlienKilled != nil {
			w.OnAlienKilled(k.Row, k.Col)
		}
	}
}

func (w *Wave) pulseHearts(dt float64) error {
	if w.heartAnim == nil {
		if w.heartIdle >= w.cfg.Hearts.IdleTime {
			w.heartAnim = system.NewHeartPulseAnimator(w.hearts, w.cfg.Hearts.Speed)
		}
		return nil
	}

	res, err := w.heartAnim.Step(dt)
	if err != nil {
		w.heartAnim = nil
		return fmt.Errorf("heart pulse: %w", err)
	}
	if res == system.StepDone {
		w.heartAnim = nil
		w.heartIdle = dt
	}
	return nil
}

// IsShipDead returns true while no ship is on the field
func (w *Wave) IsShipDead() bool {
	return w.ship == nil
}

// IsWaveOver returns true when every life is gone or every alien is
func (w *Wave) IsWaveOver() bool {
	return w.lives <= 0 || w.formation.IsEmpty()
}

// Won returns true when the formation was cleared with lives to spare
func (w *Wave) Won() bool {
	return w.lives > 0 && w.formation.IsEmpty()
}

// Lives returns the remaining lives
func (w *Wave) Lives() int {
	return w.lives
}

// Ship returns the ship, or nil while it is dead
func (w *Wave) Ship() *entity.Ship {
	return w.ship
}

// Formation returns the alien formation
func (w *Wave) Formation() *system.Formation {
	return w.formation
}

// Bolts returns the bolts in flight
func (w *Wave) Bolts() []*entity.Bolt {
	return w.bolts.Bolts()
}

// Hearts returns the life hearts
func (w *Wave) Hearts() []*entity.Heart {
	return w.hearts.Hearts()
}

// AliensRemaining returns the number of live aliens
func (w *Wave) AliensRemaining() int {
	return w.formation.Count()
}

// Draw issues the frame's draw calls: aliens, ship, defense line, bolts, hearts
func (w *Wave) Draw(view View) {
	w.formation.Each(func(_, _ int, a *entity.Alien) {
		view.DrawAlien(a)
	})
	if w.ship != nil {
		view.DrawShip(w.ship)
	}
	view.DrawDefenseLine(w.cfg.Game.DefenseLine, w.cfg.Game.Width)
	for _, b := range w.bolts.Bolts() {
		view.DrawBolt(b)
	}
	for _, h := range w.hearts.Hearts() {
		view.DrawHeart(h)
	}
}
