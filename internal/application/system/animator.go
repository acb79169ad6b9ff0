package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/invaders/internal/domain/entity"
)

var (
	// ErrAnimationDone is returned when a finished animator is stepped again
	ErrAnimationDone = errors.New("animation already finished")
	// ErrNegativeDelta is returned for a negative frame delta
	ErrNegativeDelta = errors.New("negative delta time")
)

// StepResult is the outcome of one animator step
type StepResult int

const (
	StepInProgress StepResult = iota
	StepDone
)

// String returns the string representation of the step result
func (r StepResult) String() string {
	switch r {
	case StepInProgress:
		return "InProgress"
	case StepDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// frameClock accumulates continuous time and derives a sprite frame by
// flooring, so variable deltas never drift.
type frameClock struct {
	rate  float64 // Frames per second
	total float64
	done  bool
}

func newFrameClock(duration float64) frameClock {
	return frameClock{rate: entity.SpriteFrames / duration}
}

// advance returns the frame to show and whether the sequence has ended
func (c *frameClock) advance(dt float64) (frame int, finished bool, err error) {
	if c.done {
		return 0, false, ErrAnimationDone
	}
	if dt < 0 {
		return 0, false, fmt.Errorf("%w: %f", ErrNegativeDelta, dt)
	}

	c.total += c.rate * dt
	if c.total >= entity.SpriteFrames {
		c.done = true
		return entity.SpriteFrames - 1, true, nil
	}
	return int(math.Floor(c.total)), false, nil
}

// ShipDestroyAnimator plays the ship explosion over deathSpeed seconds.
// On completion the ship shows its destroyed frame; the caller removes the
// ship and takes a life.
type ShipDestroyAnimator struct {
	clock    frameClock
	ship     *entity.Ship
	snapshot *entity.Ship
}

// NewShipDestroyAnimator starts the animation and snapshots the ship.
// It applies no delta; the first Step comes on the next frame.
func NewShipDestroyAnimator(ship *entity.Ship, deathSpeed float64) *ShipDestroyAnimator {
	return &ShipDestroyAnimator{
		clock:    newFrameClock(deathSpeed),
		ship:     ship,
		snapshot: ship.Clone(),
	}
}

// Snapshot returns the ship as it was when the animation started
func (a *ShipDestroyAnimator) Snapshot() *entity.Ship {
	return a.snapshot
}

// Step advances the animation by dt seconds
func (a *ShipDestroyAnimator) Step(dt float64) (StepResult, error) {
	frame, finished, err := a.clock.advance(dt)
	if err != nil {
		return StepDone, err
	}

	a.ship.Frame = frame
	if finished {
		return StepDone, nil
	}
	return StepInProgress, nil
}

// HeartPulseAnimator pulses every remaining heart once over heartSpeed seconds
type HeartPulseAnimator struct {
	clock frameClock
	bar   *HeartBar
}

// NewHeartPulseAnimator starts a pulse over the hearts of bar
func NewHeartPulseAnimator(bar *HeartBar, heartSpeed float64) *HeartPulseAnimator {
	return &HeartPulseAnimator{
		clock: newFrameClock(heartSpeed),
		bar:   bar,
	}
}

// Step advances the pulse by dt seconds. On completion every heart is back on frame 0.
func (a *HeartPulseAnimator) Step(dt float64) (StepResult, error) {
	frame, finished, err := a.clock.advance(dt)
	if err != nil {
		return StepDone, err
	}

	if finished {
		a.bar.SetFrame(0)
		return StepDone, nil
	}
	a.bar.SetFrame(frame)
	return StepInProgress, nil
}
