package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputState holds the current input state
type InputState struct {
	Left     bool
	Right    bool
	Fire     bool
	Start    bool
	KeyCount int // Number of keys currently down
}

// KeyBindings maps each action to the keys that trigger it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Fire  []ebiten.Key
	Start []ebiten.Key
}

// DefaultKeyBindings returns arrows/WASD movement, Up or Space to fire, S to start
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:  []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeySpace},
		Start: []ebiten.Key{ebiten.KeyS},
	}
}

// InputSystem polls the keyboard
type InputSystem struct {
	bindings KeyBindings
	pressed  []ebiten.Key
	isDown   func(ebiten.Key) bool
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{
		bindings: bindings,
		pressed:  make([]ebiten.Key, 0, 8),
		isDown:   ebiten.IsKeyPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	s.pressed = ebiten.AppendPressedKeys(s.pressed[:0])
	return s.fromKeys(len(s.pressed))
}

func (s *InputSystem) fromKeys(count int) InputState {
	return InputState{
		Left:     s.anyDown(s.bindings.Left),
		Right:    s.anyDown(s.bindings.Right),
		Fire:     s.anyDown(s.bindings.Fire),
		Start:    s.anyDown(s.bindings.Start),
		KeyCount: count,
	}
}

func (s *InputSystem) anyDown(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.isDown(k) {
			return true
		}
	}
	return false
}

// Horizontal returns -1, 0 or 1 for the requested ship movement
func (in InputState) Horizontal() int {
	dx := 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx
}
