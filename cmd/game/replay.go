package main

import (
	"fmt"
	"log"

	"github.com/younwookim/invaders/internal/application/replay"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// runReplay plays a recording without opening a window and logs where it ended
func runReplay(path string, cfg *config.WaveConfig) error {
	data, err := replay.LoadReplayFile(path)
	if err != nil {
		return err
	}
	log.Printf("Replaying %s: %d frames, seed %d", path, len(data.Frames), data.Seed)

	out, err := replay.Run(*data, cfg)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}

	log.Printf("Replay finished after %d frames: state=%s won=%v lives=%d aliens=%d",
		out.Frames, out.State, out.Won, out.Lives, out.AliensRemaining)
	return nil
}
