package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaders/internal/application/replay"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// createTestConfig creates the stock config for testing
func createTestConfig() *config.GameConfig {
	wave := config.Default()
	display := config.DefaultDisplay()
	return &config.GameConfig{Display: &display, Wave: &wave}
}

// scriptedInput replays a fixed list of frames, then reports no keys
type scriptedInput struct {
	frames []system.InputState
	next   int
}

func (s *scriptedInput) GetInput() system.InputState {
	if s.next >= len(s.frames) {
		return system.InputState{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

type countingSound struct {
	laser, alienLaser, alienHit, explosion int
}

func (c *countingSound) PlayLaser()      { c.laser++ }
func (c *countingSound) PlayAlienLaser() { c.alienLaser++ }
func (c *countingSound) PlayAlienHit()   { c.alienHit++ }
func (c *countingSound) PlayExplosion()  { c.explosion++ }

var (
	startKey = system.InputState{Start: true, KeyCount: 1}
	fireKey  = system.InputState{Fire: true, KeyCount: 1}
	noKeys   = system.InputState{}
)

func update(t *testing.T, p *Playing, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		next, err := p.Update(p.dt)
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := New(createTestConfig(), Options{Seed: 42, Input: &scriptedInput{}})

	assert.NotNil(t, p)
	assert.Equal(t, int64(42), p.Seed())
	assert.InDelta(t, 1.0/60.0, p.dt, 1e-12)
	assert.Equal(t, state.StateInactive, p.Session().State())
	assert.Nil(t, p.recorder, "no recorder without a record path")

	w, h := p.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 700, h)
}

func TestNewPlaying_ClockSeed(t *testing.T) {
	p := New(createTestConfig(), Options{Input: &scriptedInput{}})
	assert.NotZero(t, p.Seed())
}

func TestPlaying_Update_StartsWave(t *testing.T) {
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys}}
	p := New(createTestConfig(), Options{Seed: 1, Input: input})

	update(t, p, 2)

	assert.Equal(t, state.StateActive, p.Session().State())
	require.NotNil(t, p.Session().Wave())
	assert.Equal(t, 60, p.Session().Wave().AliensRemaining())
}

func TestPlaying_SoundHooks(t *testing.T) {
	sound := &countingSound{}
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys, fireKey}}
	p := New(createTestConfig(), Options{Seed: 1, Input: input, Sound: sound})

	update(t, p, 3)

	assert.Equal(t, 1, sound.laser)
	assert.Len(t, p.Session().Wave().Bolts(), 1)
}

func TestPlaying_ShipDestroyedSound(t *testing.T) {
	sound := &countingSound{}
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys}}
	p := New(createTestConfig(), Options{Seed: 1, Input: input, Sound: sound})

	update(t, p, 2)
	w := p.Session().Wave()
	require.NotNil(t, w.OnShipDestroyed)

	w.OnShipHit()
	w.OnShipDestroyed(2)
	assert.Equal(t, 2, sound.explosion, "one blast on the hit, one when the wreck is gone")
}

func TestPlaying_NilSoundIsSilent(t *testing.T) {
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys, fireKey}}
	p := New(createTestConfig(), Options{Seed: 1, Input: input})

	update(t, p, 3)

	assert.Nil(t, p.Session().Wave().OnPlayerFire)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys, fireKey}}
	p := New(createTestConfig(), Options{Seed: 7, Input: input, RecordPath: path})

	require.NotNil(t, p.recorder)
	update(t, p, 5)
	assert.Equal(t, 5, p.recorder.FrameCount())

	p.OnExit()

	data, err := replay.LoadReplayFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)
	assert.InDelta(t, p.dt, data.DT, 1e-12)
	require.Len(t, data.Frames, 5)
	assert.True(t, data.Frames[0].S)
	assert.True(t, data.Frames[2].Fi)
}

func TestPlaying_RecordingReplaysToSameOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	frames := []system.InputState{startKey, noKeys}
	for i := 0; i < 200; i++ {
		frames = append(frames, system.InputState{Left: i%3 == 0, Fire: i%5 == 0, KeyCount: 1})
	}
	p := New(createTestConfig(), Options{Seed: 99, Input: &scriptedInput{frames: frames}, RecordPath: path})

	update(t, p, len(frames))
	p.OnExit()

	data, err := replay.LoadReplayFile(path)
	require.NoError(t, err)
	out, err := replay.Run(*data, createTestConfig().Wave)
	require.NoError(t, err)

	live := p.Session().Wave()
	assert.Equal(t, live.Lives(), out.Lives)
	assert.Equal(t, live.AliensRemaining(), out.AliensRemaining)
	assert.Equal(t, p.Session().State(), out.State)
}

func TestPlaying_OnExitWithoutRecorder(t *testing.T) {
	p := New(createTestConfig(), Options{Input: &scriptedInput{}})

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
}

func TestPlaying_Draw(t *testing.T) {
	input := &scriptedInput{frames: []system.InputState{startKey, noKeys, fireKey}}
	p := New(createTestConfig(), Options{Seed: 1, Input: input})
	screen := ebiten.NewImage(800, 700)

	// Start screen, then live play
	assert.NotPanics(t, func() { p.Draw(screen) })
	update(t, p, 3)
	assert.NotPanics(t, func() { p.Draw(screen) })
}
