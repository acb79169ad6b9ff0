package replay

import (
	"fmt"

	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Outcome is where a replayed session ended up
type Outcome struct {
	Frames          int // Frames consumed
	State           state.GameState
	Lives           int
	AliensRemaining int
	Won             bool
}

// Run plays a recording headless against a fresh session. Playback stops
// at the end of the recording or when the session completes.
func Run(data ReplayData, cfg *config.WaveConfig) (Outcome, error) {
	if data.DT <= 0 {
		return Outcome{}, fmt.Errorf("%w: frame delta %f", ErrInvalidReplay, data.DT)
	}

	session := state.NewSession(cfg, system.NewRand(data.Seed))
	replayer := NewReplayer(data)

	for session.State() != state.StateComplete {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if err := session.Update(input, data.DT); err != nil {
			return outcomeOf(session, replayer), fmt.Errorf("frame %d: %w", replayer.CurrentFrame()-1, err)
		}
	}

	return outcomeOf(session, replayer), nil
}

func outcomeOf(s *state.Session, r *Replayer) Outcome {
	out := Outcome{
		Frames: r.CurrentFrame(),
		State:  s.State(),
	}
	if w := s.Wave(); w != nil {
		out.Lives = w.Lives()
		out.AliensRemaining = w.AliensRemaining()
		out.Won = w.Won()
	}
	return out
}
