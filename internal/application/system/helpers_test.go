package system

import (
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// createTestConfig returns the stock wave config
func createTestConfig() *config.WaveConfig {
	cfg := config.Default()
	return &cfg
}

// scriptedRand returns its values in order, each reduced modulo n,
// and repeats the last one when exhausted
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := 0
	if len(r.values) > 0 {
		i := r.calls
		if i >= len(r.values) {
			i = len(r.values) - 1
		}
		v = r.values[i]
	}
	r.calls++
	return v % n
}
