// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/invaders/internal/application/replay"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/application/wave"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// InputSource yields one frame of input per call
type InputSource interface {
	GetInput() system.InputState
}

// SoundPlayer plays the game's sound effects
type SoundPlayer interface {
	PlayLaser()
	PlayAlienLaser()
	PlayAlienHit()
	PlayExplosion()
}

// Options tune a Playing scene. The zero value plays live with a
// time-based seed, no sound, and no recording.
type Options struct {
	Seed       int64 // 0 picks one from the clock
	RecordPath string
	Input      InputSource // nil polls the keyboard
	Sound      SoundPlayer
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *state.Session
	input   InputSource
	sound   SoundPlayer
	view    *view
	face    font.Face
	screenW int
	screenH int
	dt      float64
	seed    int64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) *Playing {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	input := opts.Input
	if input == nil {
		input = system.NewInputSystem(system.DefaultKeyBindings())
	}

	p := &Playing{
		config:         cfg,
		session:        state.NewSession(cfg.Wave, system.NewRand(seed)),
		input:          input,
		sound:          opts.Sound,
		view:           &view{worldH: cfg.Wave.Game.Height},
		face:           basicfont.Face7x13,
		screenW:        int(cfg.Wave.Game.Width),
		screenH:        int(cfg.Wave.Game.Height),
		dt:             1.0 / float64(cfg.Display.Framerate),
		seed:           seed,
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed, p.dt)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, seed)
	}

	p.session.OnNewWave = p.wireSounds
	return p
}

// wireSounds hooks the sound effects onto a freshly built wave
func (p *Playing) wireSounds(w *wave.Wave) {
	if p.sound == nil {
		return
	}
	w.OnPlayerFire = p.sound.PlayLaser
	w.OnAlienFire = p.sound.PlayAlienLaser
	w.OnAlienKilled = func(_, _ int) { p.sound.PlayAlienHit() }
	w.OnShipHit = p.sound.PlayExplosion
	// The wreck goes off again once its animation has played out
	w.OnShipDestroyed = func(int) { p.sound.PlayExplosion() }
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// F5 saves the recording so far without stopping it
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if err := p.session.Update(input, p.dt); err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	return nil, nil // nil = stay on this scene
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.SaveFile(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.view.screen = screen
	p.session.Draw(p.view)

	p.drawUI(screen)

	if msg := p.session.Message(); msg != "" {
		p.drawOverlay(screen, msg)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	w := p.session.Wave()
	if w == nil {
		return
	}
	status := fmt.Sprintf("Lives: %d  Aliens: %d", w.Lives(), w.AliensRemaining())
	text.Draw(screen, status, p.face, 10, 20, colorText)
}

// drawOverlay dims the field and centres msg on it
func (p *Playing) drawOverlay(screen *ebiten.Image, msg string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	bounds := text.BoundString(p.face, msg)
	x := (p.screenW - bounds.Dx()) / 2
	y := (p.screenH + bounds.Dy()) / 2
	text.Draw(screen, msg, p.face, x, y, colorText)
}

// Session returns the session driven by this scene
func (p *Playing) Session() *state.Session {
	return p.session
}

// Seed returns the seed of the scene's random source
func (p *Playing) Seed() int64 {
	return p.seed
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
