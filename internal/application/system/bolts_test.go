package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaders/internal/domain/entity"
)

func createTestShip() *entity.Ship {
	return entity.NewShip(400, 32, 44, 44)
}

func addBolt(t *testing.T, m *BoltManager, x, y float64, dir entity.Direction) *entity.Bolt {
	t.Helper()
	b, err := entity.NewBolt(x, y, 4, 16, 15, dir)
	require.NoError(t, err)
	m.bolts = append(m.bolts, b)
	return b
}

func TestBoltManager_FirePlayer(t *testing.T) {
	m := NewBoltManager(createTestConfig())
	ship := createTestShip()

	fired, err := m.FirePlayer(ship)
	require.NoError(t, err)
	require.True(t, fired)
	require.Equal(t, 1, m.Len())

	bolt := m.Bolts()[0]
	assert.True(t, bolt.IsPlayerBolt())
	assert.Equal(t, 400.0, bolt.X)
	assert.Equal(t, 62.0, bolt.Y)
	assert.True(t, m.HasPlayerBolt())
}

func TestBoltManager_FirePlayer_OneInFlight(t *testing.T) {
	m := NewBoltManager(createTestConfig())
	ship := createTestShip()

	_, err := m.FirePlayer(ship)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		fired, err := m.FirePlayer(ship)
		require.NoError(t, err)
		assert.False(t, fired)
	}
	assert.Equal(t, 1, m.Len())

	// Alien bolts do not block the ship
	m.Clear()
	addBolt(t, m, 100, 300, entity.DirDown)
	fired, err := m.FirePlayer(ship)
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestBoltManager_FirePlayer_NoShip(t *testing.T) {
	m := NewBoltManager(createTestConfig())

	fired, err := m.FirePlayer(nil)
	require.NoError(t, err)
	assert.False(t, fired)
	assert.Equal(t, 0, m.Len())
}

func TestBoltManager_FireAlien(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	// Column 0 is empty, so the first roll is re-rolled into column 5
	for row := 0; row < f.Rows(); row++ {
		f.Kill(row, 0)
	}
	rng := &scriptedRand{values: []int{0, 5}}

	bolt, err := m.FireAlien(f, rng)
	require.NoError(t, err)
	require.NotNil(t, bolt)

	assert.Equal(t, 2, rng.calls)
	assert.False(t, bolt.IsPlayerBolt())
	assert.Equal(t, f.At(0, 5).X, bolt.X)
	assert.Equal(t, 363.0, bolt.Y)
	assert.Equal(t, 1, m.Len())
}

func TestBoltManager_FireAlien_FromFrontline(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)
	f.Kill(0, 2)
	f.Kill(1, 2)

	bolt, err := m.FireAlien(f, &scriptedRand{values: []int{2}})
	require.NoError(t, err)

	shooter := f.At(2, 2)
	assert.Equal(t, shooter.X, bolt.X)
	assert.Equal(t, shooter.Bottom()-8, bolt.Y)
}

func TestBoltManager_FireAlien_EmptyFormation(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			f.Kill(row, col)
		}
	}

	bolt, err := m.FireAlien(f, &scriptedRand{})
	assert.ErrorIs(t, err, ErrFormationEmpty)
	assert.Nil(t, bolt)
	assert.Equal(t, 0, m.Len())
}

func TestBoltManager_Update_Advances(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	up := addBolt(t, m, 700, 200, entity.DirUp)
	down := addBolt(t, m, 750, 300, entity.DirDown)

	res := m.Update(f, nil)

	assert.Equal(t, Resolution{}, res)
	assert.Equal(t, 215.0, up.Y)
	assert.Equal(t, 285.0, down.Y)
	assert.Equal(t, 2, m.Len())
}

func TestBoltManager_Update_RemovesExpired(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	addBolt(t, m, 700, 690, entity.DirUp)
	addBolt(t, m, 750, 10, entity.DirDown)
	keep := addBolt(t, m, 780, 300, entity.DirDown)

	res := m.Update(f, nil)

	assert.Equal(t, 2, res.Expired)
	require.Equal(t, 1, m.Len())
	assert.Same(t, keep, m.Bolts()[0])
	for _, b := range m.Bolts() {
		assert.False(t, b.IsExpired(cfg.Game.Height))
	}
}

func TestBoltManager_Update_PlayerBoltKillsAlien(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)
	target := f.At(0, 0)

	addBolt(t, m, target.X, 350, entity.DirUp)

	res := m.Update(f, createTestShip())

	require.Len(t, res.Kills, 1)
	assert.Equal(t, Kill{Row: 0, Col: 0}, res.Kills[0])
	assert.False(t, res.ShipHit)
	assert.Nil(t, f.At(0, 0))
	assert.InDelta(t, 0.97, f.StepInterval(), 1e-12)
	assert.Equal(t, 0, m.Len())
}

func TestBoltManager_Update_AlienBoltHitsShip(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	addBolt(t, m, 400, 75, entity.DirDown)

	res := m.Update(f, createTestShip())

	assert.True(t, res.ShipHit)
	assert.Empty(t, res.Kills)
	assert.Equal(t, 0, m.Len())
}

func TestBoltManager_Update_ShipHitOncePerPass(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	addBolt(t, m, 400, 75, entity.DirDown)
	second := addBolt(t, m, 405, 75, entity.DirDown)

	res := m.Update(f, createTestShip())

	assert.True(t, res.ShipHit)
	require.Equal(t, 1, m.Len())
	assert.Same(t, second, m.Bolts()[0])
}

func TestBoltManager_Update_OwnershipFiltering(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)
	alien := f.At(0, 0)

	// An alien bolt passing through an alien, and a player bolt inside the ship
	addBolt(t, m, alien.X, alien.Y+15, entity.DirDown)
	addBolt(t, m, 400, 17, entity.DirUp)

	res := m.Update(f, createTestShip())

	assert.Empty(t, res.Kills)
	assert.False(t, res.ShipHit)
	assert.Equal(t, 2, m.Len())
	assert.NotNil(t, f.At(0, 0))
}

func TestBoltManager_Update_NilShipNeverHit(t *testing.T) {
	cfg := createTestConfig()
	m := NewBoltManager(cfg)
	f := NewFormation(cfg)

	addBolt(t, m, 400, 75, entity.DirDown)

	res := m.Update(f, nil)

	assert.False(t, res.ShipHit)
	assert.Equal(t, 1, m.Len())
}
