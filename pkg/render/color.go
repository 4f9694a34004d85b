// pkg/render/color.go
package render

import "image/color"

// ScopeColors holds the colors the scope display is drawn with.
type ScopeColors struct {
	Background  color.RGBA
	Scope       color.RGBA
	SweepTrail  color.RGBA
	Course      color.RGBA
	CourseHot   color.RGBA
	Aircraft    color.RGBA
	Selected    color.RGBA
	Authorized  color.RGBA
	Interceptor color.RGBA
	Text        color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
