// Package terminal draws the game on a character-cell screen and turns
// terminal key presses into held input.
package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/invaders/internal/domain/entity"
)

// Styles for rendering
var (
	styleShip      = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleWreck     = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleBolt      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlienBolt = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleLine      = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleHeart     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Glyph and colour per alien image
var (
	alienRunes = map[string]rune{"alien1": 'W', "alien2": 'M', "alien3": 'V'}

	alienStyles = map[string]tcell.Style{
		"alien1": tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		"alien2": tcell.StyleDefault.Foreground(tcell.ColorAqua),
		"alien3": tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// Renderer maps world coordinates (origin bottom-left, y up) onto the
// cells of a tcell screen, stretching the world to fill it
type Renderer struct {
	screen         tcell.Screen
	worldW, worldH float64
	cols, rows     int
}

// NewRenderer creates a renderer for a world of the given size
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	return &Renderer{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Begin clears the screen and picks up its current size
func (r *Renderer) Begin() {
	r.cols, r.rows = r.screen.Size()
	r.screen.Clear()
}

// End presents the frame
func (r *Renderer) End() {
	r.screen.Show()
}

// cellRange returns the inclusive cell span covered by a world rect
func (r *Renderer) cellRange(rect entity.Rect) (c0, r0, c1, r1 int) {
	cols, rows := float64(r.cols), float64(r.rows)

	c0 = int(math.Floor(rect.Left() * cols / r.worldW))
	c1 = int(math.Ceil(rect.Right()*cols/r.worldW)) - 1
	r0 = int(math.Floor((r.worldH - rect.Top()) * rows / r.worldH))
	r1 = int(math.Ceil((r.worldH-rect.Bottom())*rows/r.worldH)) - 1

	c1 = max(c1, c0)
	r1 = max(r1, r0)
	return
}

func (r *Renderer) fill(rect entity.Rect, ch rune, style tcell.Style) {
	c0, r0, c1, r1 := r.cellRange(rect)
	for row := max(r0, 0); row <= min(r1, r.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, r.cols-1); col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// DrawAlien draws an alien in its image's glyph
func (r *Renderer) DrawAlien(a *entity.Alien) {
	ch, ok := alienRunes[a.Image]
	if !ok {
		ch = 'X'
	}
	style, ok := alienStyles[a.Image]
	if !ok {
		style = tcell.StyleDefault
	}
	r.fill(a.Rect, ch, style)
}

// DrawShip draws the ship, switching to wreckage glyphs as it explodes
func (r *Renderer) DrawShip(s *entity.Ship) {
	if s.Frame == 0 {
		r.fill(s.Rect, '^', styleShip)
		return
	}
	wreck := []rune{'*', '+', '.'}
	r.fill(s.Rect, wreck[(s.Frame-1)*len(wreck)/(entity.SpriteFrames-1)%len(wreck)], styleWreck)
}

// DrawDefenseLine draws the line across the world width
func (r *Renderer) DrawDefenseLine(y, width float64) {
	r.fill(entity.Rect{X: width / 2, Y: y, Width: width}, '-', styleLine)
}

// DrawBolt draws a bolt, coloured by its owner
func (r *Renderer) DrawBolt(b *entity.Bolt) {
	if b.IsPlayerBolt() {
		r.fill(b.Rect, '|', styleBolt)
		return
	}
	r.fill(b.Rect, '!', styleAlienBolt)
}

// DrawHeart draws a heart, bold on the odd pulse frames
func (r *Renderer) DrawHeart(h *entity.Heart) {
	r.fill(h.Rect, '♥', styleHeart.Bold(h.Frame%2 == 1))
}

// DrawText writes msg centred on the middle row
func (r *Renderer) DrawText(msg string) {
	r.print((r.cols-len([]rune(msg)))/2, r.rows/2, msg, styleText)
}

// DrawStatus writes the lives and alien count in the top-left corner
func (r *Renderer) DrawStatus(lives, aliens int) {
	r.print(0, 0, fmt.Sprintf("lives %d  aliens %d", lives, aliens), styleStatus)
}

func (r *Renderer) print(col, row int, msg string, style tcell.Style) {
	for _, ch := range msg {
		if col >= 0 && col < r.cols && row >= 0 && row < r.rows {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}
