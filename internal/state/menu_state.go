// internal/state/menu_state.go
package state

import (
	"image"

	"go-radar-scope/internal/config"
	"go-radar-scope/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	startButtonW = 120
	startButtonH = 40
)

// MenuState — стартовый экран с одной кнопкой
type MenuState struct {
	sm    *StateMachine
	next  State
	start *ui.MenuButton
}

func NewMenuState(sm *StateMachine, next State) *MenuState {
	x := (config.ScreenWidth - startButtonW) / 2
	y := (config.ScreenHeight - startButtonH) / 2
	return &MenuState{
		sm:   sm,
		next: next,
		start: ui.NewMenuButton(image.Rect(x, y, x+startButtonW, y+startButtonH),
			"START", config.BackgroundColor, config.ScopeColor),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicked = m.start.IsClicked(ebiten.CursorPosition())
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
