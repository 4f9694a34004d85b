// internal/ui/pause_banner.go
package ui

import (
	"go-radar-scope/internal/config"
	"go-radar-scope/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const pauseText = "PAUSED"

// DrawPauseBanner dims the screen and writes PAUSED in the middle.
func DrawPauseBanner(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseShade, false)
	x := (config.ScreenWidth - render.LabelWidth(pauseText)) / 2
	render.Label(screen, pauseText, x, config.ScreenHeight/2, config.TextLightColor)
}
