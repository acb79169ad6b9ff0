package system

import (
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// HeartBar is the row of remaining-life hearts in the top-right corner.
// Hearts are laid out right to left and removed from the left end.
type HeartBar struct {
	hearts []*entity.Heart
}

// NewHeartBar creates one heart per life
func NewHeartBar(cfg *config.WaveConfig, lives int) *HeartBar {
	h := cfg.Hearts
	bar := &HeartBar{hearts: make([]*entity.Heart, 0, lives)}

	x := cfg.Game.Width - h.Width/2
	y := cfg.Game.Height - h.Height/2
	for i := 0; i < lives; i++ {
		bar.hearts = append(bar.hearts, entity.NewHeart(x, y, h.Width, h.Height))
		x -= h.Width
	}

	return bar
}

// Len returns the number of hearts
func (b *HeartBar) Len() int {
	return len(b.hearts)
}

// Hearts returns the hearts in layout order
func (b *HeartBar) Hearts() []*entity.Heart {
	return b.hearts
}

// Pop removes the last heart. Returns false if there are none left.
func (b *HeartBar) Pop() bool {
	if len(b.hearts) == 0 {
		return false
	}
	b.hearts[len(b.hearts)-1] = nil
	b.hearts = b.hearts[:len(b.hearts)-1]
	return true
}

// SetFrame sets the sprite frame of every heart
func (b *HeartBar) SetFrame(frame int) {
	for _, h := range b.hearts {
		h.Frame = frame
	}
}

// Clear removes every heart
func (b *HeartBar) Clear() {
	clear(b.hearts)
	b.hearts = b.hearts[:0]
}
