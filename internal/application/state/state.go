package state

// GameState is the screen the application is on
type GameState int

const (
	StateInactive GameState = iota // Waiting for the first start press
	StateNewWave                   // Builds a wave, lasts one frame
	StateActive
	StatePaused   // Ship lost, waiting for a start press
	StateContinue // Revives the ship, lasts one frame
	StateComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateNewWave:
		return "NewWave"
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateContinue:
		return "Continue"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}
