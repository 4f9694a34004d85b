// internal/state/game_state.go
package state

import (
	"time"

	"go-radar-scope/internal/app"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/interfaces"
	"go-radar-scope/internal/metrics"
	"go-radar-scope/internal/ui"
	"go-radar-scope/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot is one frame of operator input, already decoded into commands.
type InputSnapshot struct {
	Cursor     geom.Vec2
	Select     bool
	Detonate   bool
	Launch     bool
	Recall     bool
	Spawn      bool
	AddRule    bool
	RemoveRule bool
	Pause      bool
}

// GameState — состояние игры: симуляция, радар и панель
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	scope   *ui.ScopeRenderer
	hud     *ui.HUD
	metrics *metrics.Collector // nil без отладочного сервера
}

func NewGameState(sm *StateMachine, game *app.Game, collector *metrics.Collector) *GameState {
	return &GameState{
		sm:      sm,
		game:    game,
		scope:   ui.NewScopeRenderer(game.ECS),
		hud:     ui.NewHUD(game.ECS),
		metrics: collector,
	}
}

// Game returns the simulation this state drives.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.step(pollInput(), deltaTime)
}

// step applies input first, then advances the simulation.
func (g *GameState) step(in InputSnapshot, deltaTime float64) {
	dispatchInput(in, g.game)
	if g.game.IsPaused() {
		g.sm.Pause(g)
		return
	}

	start := time.Now()
	g.game.Update(deltaTime)
	if g.metrics != nil {
		g.metrics.ObserveUpdate(time.Since(start))
	}
}

func pollInput() InputSnapshot {
	x, y := ebiten.CursorPosition()
	onScope := x < config.PanelX
	return InputSnapshot{
		Cursor:     geom.V(float64(x), float64(y)),
		Select:     onScope && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Detonate:   onScope && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Launch:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Recall:     inpututil.IsKeyJustPressed(ebiten.KeyAltLeft) || inpututil.IsKeyJustPressed(ebiten.KeyAltRight),
		Spawn:      inpututil.IsKeyJustPressed(ebiten.KeyS),
		AddRule:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		RemoveRule: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Pause:      isPauseKeyPressed(),
	}
}

func isPauseKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// dispatchInput turns a snapshot into commands. Selection runs before launch
// so a click and Space in the same frame fire at the new pick.
func dispatchInput(in InputSnapshot, cmd interfaces.Commander) {
	if in.Select {
		cmd.SelectNearestAircraft(in.Cursor)
	}
	if in.Detonate {
		cmd.DetonateNearestInterceptor(in.Cursor)
	}
	if in.Launch {
		cmd.LaunchInterceptor()
	}
	if in.Recall {
		cmd.RecallSelected()
	}
	if in.Spawn {
		cmd.SpawnAircraft()
	}
	if in.AddRule {
		cmd.ToggleRule(true)
	}
	if in.RemoveRule {
		cmd.ToggleRule(false)
	}
	if in.Pause {
		cmd.TogglePause()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	selected, _ := g.game.Selected()
	x, y := ebiten.CursorPosition()
	g.scope.Draw(screen, selected, geom.V(float64(x), float64(y)), g.game.GetGameTime())
	g.hud.Draw(screen, g.game)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
