package state

import (
	"testing"

	"go-radar-scope/internal/app"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommander struct {
	calls []string
	point geom.Vec2
}

func (f *fakeCommander) SelectNearestAircraft(p geom.Vec2) bool {
	f.calls, f.point = append(f.calls, "select"), p
	return true
}

func (f *fakeCommander) LaunchInterceptor() bool {
	f.calls = append(f.calls, "launch")
	return true
}

func (f *fakeCommander) DetonateNearestInterceptor(p geom.Vec2) bool {
	f.calls, f.point = append(f.calls, "detonate"), p
	return true
}

func (f *fakeCommander) ToggleRule(add bool) bool {
	if add {
		f.calls = append(f.calls, "rule+")
	} else {
		f.calls = append(f.calls, "rule-")
	}
	return true
}

func (f *fakeCommander) SpawnAircraft() types.EntityID {
	f.calls = append(f.calls, "spawn")
	return 1
}

func (f *fakeCommander) RecallSelected() bool {
	f.calls = append(f.calls, "recall")
	return true
}

func (f *fakeCommander) TogglePause() {
	f.calls = append(f.calls, "pause")
}

func TestDispatchInputOrder(t *testing.T) {
	cmd := &fakeCommander{}
	dispatchInput(InputSnapshot{
		Cursor:     geom.V(10, 20),
		Select:     true,
		Launch:     true,
		Recall:     true,
		Spawn:      true,
		AddRule:    true,
		RemoveRule: true,
		Pause:      true,
	}, cmd)

	assert.Equal(t, []string{"select", "launch", "recall", "spawn", "rule+", "rule-", "pause"}, cmd.calls)
	assert.Equal(t, geom.V(10, 20), cmd.point)
}

func TestDispatchInputEmpty(t *testing.T) {
	cmd := &fakeCommander{}
	dispatchInput(InputSnapshot{Cursor: geom.V(1, 1)}, cmd)
	assert.Empty(t, cmd.calls)
}

func TestDispatchInputDetonate(t *testing.T) {
	cmd := &fakeCommander{}
	dispatchInput(InputSnapshot{Cursor: geom.V(3, 4), Detonate: true}, cmd)
	assert.Equal(t, []string{"detonate"}, cmd.calls)
	assert.Equal(t, geom.V(3, 4), cmd.point)
}

func newGameState(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	t.Cleanup(viper.Reset)
	settings := config.Defaults()
	settings.Seed = 3
	sm := NewStateMachine()
	gs := NewGameState(sm, app.NewGame(settings, zerolog.Nop()), nil)
	sm.SetState(gs)
	return sm, gs
}

func TestGameStateAdvancesSimulation(t *testing.T) {
	_, gs := newGameState(t)
	gs.step(InputSnapshot{}, 0.05)
	assert.Equal(t, uint64(3), gs.Game().Ticks())
}

func TestPauseRoundTrip(t *testing.T) {
	sm, gs := newGameState(t)

	gs.step(InputSnapshot{Pause: true}, 0.05)
	require.True(t, gs.Game().IsPaused())
	pause, ok := sm.Current().(*PauseState)
	require.True(t, ok, "pause input switches to the pause screen")
	assert.Zero(t, gs.Game().Ticks(), "a paused frame does not advance")

	assert.Same(t, gs, pause.previousState)

	sm.Resume(gs)
	assert.False(t, gs.Game().IsPaused())
	assert.Same(t, gs, sm.Current())

	gs.step(InputSnapshot{}, 0.05)
	assert.Equal(t, uint64(3), gs.Game().Ticks(), "resumed scene advances again")
}

func TestMenuStartsNextState(t *testing.T) {
	sm, gs := newGameState(t)
	menu := NewMenuState(sm, gs)
	sm.SetState(menu)
	assert.Same(t, menu, sm.Current())
	assert.True(t, menu.start.IsClicked(config.ScreenWidth/2, config.ScreenHeight/2))
	assert.False(t, menu.start.IsClicked(0, 0))
}

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *traceState) Update(float64) { *s.log = append(*s.log, "update "+s.name) }
func (s *traceState) Draw(*ebiten.Image) {}
func (s *traceState) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func TestSetStateExitsBeforeEntering(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016)
	assert.Nil(t, sm.Current())

	sm.SetState(&traceState{name: "menu", log: &log})
	sm.Update(0.016)
	sm.SetState(&traceState{name: "scope", log: &log})
	sm.SetState(nil)
	sm.Update(0.016)

	assert.Equal(t, []string{"enter menu", "update menu", "exit menu", "enter scope", "exit scope"}, log)
}

func TestMachinePauseIsIdempotent(t *testing.T) {
	sm, gs := newGameState(t)
	sm.Pause(gs)
	sm.Pause(gs)
	require.True(t, gs.Game().IsPaused())
	_, ok := sm.Current().(*PauseState)
	assert.True(t, ok)

	sm.Resume(gs)
	sm.Resume(gs)
	assert.False(t, gs.Game().IsPaused())
	assert.Same(t, gs, sm.Current())
}
