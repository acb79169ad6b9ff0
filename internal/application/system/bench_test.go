package system

import (
	"testing"

	"github.com/younwookim/invaders/internal/domain/entity"
)

// Case 1: bolt misses, the whole grid is scanned

func BenchmarkFormation_HitByMiss(b *testing.B) {
	f := NewFormation(createTestConfig())
	bolt, err := entity.NewBolt(-100, -100, 4, 16, 15, entity.DirUp)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, _, ok := f.HitBy(bolt); ok {
			b.Fatal("unexpected hit")
		}
	}
}

// Case 2: march a full formation, reversing at the walls

func BenchmarkFormation_March(b *testing.B) {
	cfg := createTestConfig()
	cfg.Aliens.VWalk = 0 // never reaches the defense line
	f := NewFormation(cfg)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		f.March()
	}
}

// Case 3: bolts in flight against a full formation

func BenchmarkBoltManager_Update(b *testing.B) {
	cfg := createTestConfig()
	f := NewFormation(cfg)
	ship := entity.NewShip(cfg.Game.Width/2, cfg.Ship.Bottom, cfg.Ship.Width, cfg.Ship.Height)
	rng := NewRand(1)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := NewBoltManager(cfg)
		for i := 0; i < 5; i++ {
			if _, err := m.FireAlien(f, rng); err != nil {
				b.Fatal(err)
			}
		}
		m.Update(f, ship)
	}
}
