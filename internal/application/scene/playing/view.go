package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/invaders/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{10, 10, 24, 255}
	colorShip        = color.RGBA{100, 200, 100, 255}
	colorWreck       = color.RGBA{255, 140, 40, 255}
	colorDefenseLine = color.RGBA{200, 50, 50, 255}
	colorPlayerBolt  = color.RGBA{255, 255, 255, 255}
	colorAlienBolt   = color.RGBA{255, 100, 100, 255}
	colorHeart       = color.RGBA{220, 40, 80, 255}
	colorUnknown     = color.RGBA{255, 0, 255, 255}
	colorText        = color.RGBA{230, 230, 230, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 150}
)

var alienColors = map[string]color.RGBA{
	"alien1": {200, 100, 200, 255},
	"alien2": {100, 180, 255, 255},
	"alien3": {255, 215, 0, 255},
}

// view draws a wave onto an ebiten image. World y points up, so every
// rect is flipped against the world height.
type view struct {
	screen *ebiten.Image
	worldH float64
}

func (v *view) flip(r entity.Rect) (x, y, w, h float32) {
	return float32(r.Left()), float32(v.worldH - r.Top()), float32(r.Width), float32(r.Height)
}

func (v *view) rect(r entity.Rect, clr color.Color) {
	x, y, w, h := v.flip(r)
	vector.DrawFilledRect(v.screen, x, y, w, h, clr, false)
}

func (v *view) DrawAlien(a *entity.Alien) {
	clr, ok := alienColors[a.Image]
	if !ok {
		clr = colorUnknown
	}
	v.rect(a.Rect, clr)
}

// DrawShip shrinks the hull towards its centre as the destruction frames advance
func (v *view) DrawShip(s *entity.Ship) {
	if s.Frame == 0 {
		v.rect(s.Rect, colorShip)
		return
	}
	remain := 1 - float64(s.Frame)/float64(entity.SpriteFrames)
	wreck := s.Rect
	wreck.Width *= remain
	wreck.Height *= remain
	v.rect(wreck, colorWreck)
}

func (v *view) DrawDefenseLine(y, width float64) {
	sy := float32(v.worldH - y)
	vector.StrokeLine(v.screen, 0, sy, float32(width), sy, 1, colorDefenseLine, false)
}

func (v *view) DrawBolt(b *entity.Bolt) {
	if b.IsPlayerBolt() {
		v.rect(b.Rect, colorPlayerBolt)
		return
	}
	v.rect(b.Rect, colorAlienBolt)
}

// DrawHeart pulses the radius with the animation frame
func (v *view) DrawHeart(h *entity.Heart) {
	r := float32(h.Width) / 2 * (0.7 + 0.3*float32(h.Frame%2))
	vector.DrawFilledCircle(v.screen, float32(h.X), float32(v.worldH-h.Y), r, colorHeart, true)
}
