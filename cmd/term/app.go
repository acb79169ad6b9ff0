package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/application/wave"
	"github.com/younwookim/invaders/internal/infrastructure/config"
	"github.com/younwookim/invaders/internal/infrastructure/terminal"
)

// soundPlayer plays the game's sound effects
type soundPlayer interface {
	PlayLaser()
	PlayAlienLaser()
	PlayAlienHit()
	PlayExplosion()
}

// app runs a session on a terminal screen
type app struct {
	screen   tcell.Screen
	renderer *terminal.Renderer
	keys     *terminal.KeyTracker
	session  *state.Session
	dt       float64
}

func newApp(screen tcell.Screen, cfg *config.GameConfig, seed int64, sound soundPlayer) *app {
	a := &app{
		screen:   screen,
		renderer: terminal.NewRenderer(screen, cfg.Wave.Game.Width, cfg.Wave.Game.Height),
		keys:     terminal.NewKeyTracker(terminal.DefaultInitialHold, terminal.DefaultRepeatHold),
		session:  state.NewSession(cfg.Wave, system.NewRand(seed)),
		dt:       1.0 / float64(cfg.Display.Framerate),
	}
	a.session.OnNewWave = func(w *wave.Wave) { a.wire(w, sound) }
	return a
}

// wire hooks a fresh wave up to the sound effects and key state
func (a *app) wire(w *wave.Wave, sound soundPlayer) {
	// Drop keys still held from play, so the pause screen waits for a fresh press
	w.OnShipDestroyed = func(int) {
		a.keys.Release()
		if sound != nil {
			sound.PlayExplosion()
		}
	}
	if sound == nil {
		return
	}
	w.OnPlayerFire = sound.PlayLaser
	w.OnAlienFire = sound.PlayAlienLaser
	w.OnAlienKilled = func(_, _ int) { sound.PlayAlienHit() }
	w.OnShipHit = sound.PlayExplosion
}

// frame returns the wall-clock length of one update
func (a *app) frame() time.Duration {
	return time.Duration(a.dt * float64(time.Second))
}

// handle processes one terminal event. Returns false when the player quits.
func (a *app) handle(ev tcell.Event, at time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if terminal.IsQuit(ev) {
			return false
		}
		a.keys.HandleKey(ev, at)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// tick advances the session by one frame and redraws
func (a *app) tick(at time.Time) error {
	if err := a.session.Update(a.keys.Input(at), a.dt); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	a.draw()
	return nil
}

func (a *app) draw() {
	a.renderer.Begin()
	a.session.Draw(a.renderer)
	if w := a.session.Wave(); w != nil {
		a.renderer.DrawStatus(w.Lives(), w.AliensRemaining())
	}
	if msg := a.session.Message(); msg != "" {
		a.renderer.DrawText(msg)
	}
	a.renderer.End()
}

// run drives the session from a ticker until quit or failure
func (a *app) run() error {
	ticker := time.NewTicker(a.frame())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			if err := a.tick(now); err != nil {
				return err
			}
		}
	}
}
