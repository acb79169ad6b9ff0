// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/invaders/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int

	quitPressed func() bool
}

// New creates a new Game with the given initial scene, updated at a fixed
// step of 1/framerate seconds. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.quitPressed = func() bool {
		return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Escape ends the game with ebiten.Termination; the current scene's
// OnExit runs before the loop stops, on quit or on error.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quitPressed() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	g.frames++
	if err != nil {
		g.current.OnExit()
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frames
}

// DT returns the fixed update step in seconds
func (g *Game) DT() float64 {
	return g.dt
}

