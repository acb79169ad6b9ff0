// Package audio plays synthesized sound effects through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes sound effects into a single speaker stream.
// Every Play call is a no-op until Initialize succeeds, so a machine
// without audio runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play starts one instance of the sound. Returns false if nothing was queued.
func (sm *SoundManager) Play(sound Sound) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	streamer := NewSound(sound, sampleRate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// PlayLaser plays the ship fire sound
func (sm *SoundManager) PlayLaser() { sm.Play(SoundLaser) }

// PlayAlienLaser plays the alien fire sound
func (sm *SoundManager) PlayAlienLaser() { sm.Play(SoundAlienLaser) }

// PlayAlienHit plays the alien destroyed sound
func (sm *SoundManager) PlayAlienHit() { sm.Play(SoundAlienHit) }

// PlayExplosion plays the ship destroyed sound
func (sm *SoundManager) PlayExplosion() { sm.Play(SoundExplosion) }
