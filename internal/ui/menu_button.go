// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-radar-scope/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, text string, bg, fg color.RGBA) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: bg,
		fgColor: fg,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, b.fgColor, false)

	tx := b.Rect.Min.X + (b.Rect.Dx()-render.LabelWidth(b.Text))/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-render.Face.Metrics().Height.Ceil())/2
	render.Label(screen, b.Text, tx, ty, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
