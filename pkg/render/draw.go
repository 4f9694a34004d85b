// pkg/render/draw.go
package render

import (
	"image/color"

	"go-radar-scope/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font every label is drawn with.
var Face font.Face = basicfont.Face7x13

// Line strokes a segment between a and b.
func Line(dst *ebiten.Image, a, b geom.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// Disc fills a circle.
func Disc(dst *ebiten.Image, c geom.Vec2, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(radius), clr, true)
}

// Ring strokes a circle outline.
func Ring(dst *ebiten.Image, c geom.Vec2, radius float64, width float32, clr color.Color) {
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(radius), width, clr, true)
}

// Polyline strokes a closed path through pts.
func Polyline(dst *ebiten.Image, pts []geom.Vec2, width float32, clr color.Color) {
	for i := range pts {
		Line(dst, pts[i], pts[(i+1)%len(pts)], width, clr)
	}
}

// Label draws s with its top-left corner at (x, y).
func Label(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	// text.Draw ставит базовую линию, а не верх строки
	text.Draw(dst, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// LabelWidth returns the advance of s in pixels.
func LabelWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}
