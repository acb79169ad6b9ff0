package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/invaders/internal/application/system"
)

// Action is a game input a key maps to
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionFire
	ActionStart
	actionCount
)

// Default hold windows. The first press has to bridge the terminal's
// autorepeat delay; later repeats arrive much faster.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyTracker turns key-press events into held key state. Terminals never
// report a key going up, so a key counts as down until its hold window
// passes without another press.
type KeyTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   [actionCount]time.Time
}

// NewKeyTracker creates a tracker with the given hold windows
func NewKeyTracker(initial, repeat time.Duration) *KeyTracker {
	return &KeyTracker{initial: initial, repeat: repeat}
}

// actionFor maps a key event to an action
func actionFor(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft, true
	case tcell.KeyRight:
		return ActionRight, true
	case tcell.KeyUp:
		return ActionFire, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ActionLeft, true
		case 'd', 'D':
			return ActionRight, true
		case ' ':
			return ActionFire, true
		case 's', 'S':
			return ActionStart, true
		}
	}
	return 0, false
}

// IsQuit reports whether the event asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// HandleKey records a press seen at the given time. Returns false for keys
// that map to no action.
func (k *KeyTracker) HandleKey(ev *tcell.EventKey, at time.Time) bool {
	a, ok := actionFor(ev)
	if !ok {
		return false
	}

	hold := k.initial
	if at.Before(k.until[a]) {
		hold = k.repeat
	}
	k.until[a] = at.Add(max(hold, k.until[a].Sub(at)))
	return true
}

func (k *KeyTracker) held(a Action, at time.Time) bool {
	return at.Before(k.until[a])
}

// Input returns the held state at the given time
func (k *KeyTracker) Input(at time.Time) system.InputState {
	in := system.InputState{
		Left:  k.held(ActionLeft, at),
		Right: k.held(ActionRight, at),
		Fire:  k.held(ActionFire, at),
		Start: k.held(ActionStart, at),
	}
	for a := Action(0); a < actionCount; a++ {
		if k.held(a, at) {
			in.KeyCount++
		}
	}
	return in
}

// Release drops every held key
func (k *KeyTracker) Release() {
	k.until = [actionCount]time.Time{}
}
