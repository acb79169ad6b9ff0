package state

import (
	"fmt"
	"log"

	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/application/wave"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Overlay messages
const (
	MessageStart    = "Press 'S' To Start"
	MessageContinue = "Press 'S' To Continue"
	MessageWin      = "You Win!"
	MessageLose     = "Game Over - You Lose :("
)

// Session moves between screens and owns the current wave
type Session struct {
	cfg      *config.WaveConfig
	rng      system.Rand
	state    GameState
	wave     *wave.Wave
	lastKeys int // Key count seen on the previous frame

	// OnNewWave is called with every freshly built wave, before its first update
	OnNewWave func(w *wave.Wave)
}

// NewSession creates a session on the start screen
func NewSession(cfg *config.WaveConfig, rng system.Rand) *Session {
	return &Session{
		cfg:   cfg,
		rng:   rng,
		state: StateInactive,
	}
}

// State returns the current screen
func (s *Session) State() GameState {
	return s.state
}

// Wave returns the current wave, or nil before the first one is built
func (s *Session) Wave() *wave.Wave {
	return s.wave
}

// Message returns the overlay text for the current screen, or "" during play
func (s *Session) Message() string {
	switch s.state {
	case StateInactive:
		return MessageStart
	case StatePaused:
		return MessageContinue
	case StateComplete:
		if s.wave != nil && s.wave.Won() {
			return MessageWin
		}
		return MessageLose
	default:
		return ""
	}
}

// Update advances the session by one frame
func (s *Session) Update(input system.InputState, dt float64) error {
	pressed := s.startPressed(input)

	switch s.state {
	case StateInactive:
		if pressed {
			s.setState(StateNewWave)
		}

	case StateNewWave:
		w, err := wave.New(s.cfg, s.rng)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		s.wave = w
		if s.OnNewWave != nil {
			s.OnNewWave(w)
		}
		s.setState(StateActive)

	case StateActive:
		err := s.wave.Update(input, dt)
		if s.wave.IsShipDead() {
			s.setState(StatePaused)
		}
		if s.wave.IsWaveOver() {
			s.setState(StateComplete)
		}
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}

	case StatePaused:
		if pressed {
			s.setState(StateContinue)
		}

	case StateContinue:
		err := s.wave.Update(input, dt)
		s.setState(StateActive)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}

	return nil
}

// startPressed is true only on the frame the start key goes down with no
// other key already held, so holding it never skips a screen
func (s *Session) startPressed(input system.InputState) bool {
	pressed := input.KeyCount > 0 && s.lastKeys == 0 && input.Start
	s.lastKeys = input.KeyCount
	return pressed
}

func (s *Session) setState(next GameState) {
	if next == s.state {
		return
	}
	log.Printf("[session] %s -> %s", s.state, next)
	s.state = next
}

// Draw draws the current wave, if any
func (s *Session) Draw(view wave.View) {
	if s.wave != nil {
		s.wave.Draw(view)
	}
}
