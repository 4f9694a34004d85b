package app

import (
	"testing"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Cleanup(viper.Reset)
	settings := config.Defaults()
	settings.Seed = 7
	return NewGame(settings, zerolog.Nop())
}

// placeSpotted puts a motionless, already spotted aircraft on the scope.
func placeSpotted(g *Game, x, y float64, country string, purpose defs.Purpose) types.EntityID {
	id := g.AircraftSystem.SpawnWith(geom.V(x, y), component.Velocity{Direction: geom.V(1, 0)}, component.Aircraft{
		Country:    country,
		Purpose:    purpose,
		Identifier: 42,
		CanRecall:  true,
	})
	g.ECS.Aircraft[id].Spotted = true
	return id
}

func TestNewGameSession(t *testing.T) {
	g := newTestGame(t)
	_, err := uuid.Parse(g.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), g.Rng.Seed())
	assert.False(t, g.IsPaused())
}

func TestUpdateRunsFixedTicks(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, 1, g.Update(1.0/config.TPS))
	assert.InDelta(t, config.TickMs, g.GetGameTime(), 1e-9)
	assert.Equal(t, 1, g.ECS.Count(component.KindAircraft), "first spawn is immediate")

	assert.Equal(t, 0, g.Update(0.005), "less than a tick is carried over")
	assert.Equal(t, 3, g.Update(0.5), "long frames are clamped")
	assert.Equal(t, uint64(4), g.Ticks())
}

func TestPauseFreezesTime(t *testing.T) {
	g := newTestGame(t)
	events := counter{}
	g.EventDispatcher.SubscribeAll(events, event.Paused, event.Resumed)

	g.Update(0.05)
	before := g.GetGameTime()

	require.True(t, g.Pause())
	assert.False(t, g.Pause())
	assert.Equal(t, 0, g.Update(0.05))
	assert.Equal(t, before, g.GetGameTime())

	g.TogglePause()
	assert.False(t, g.IsPaused())
	assert.False(t, g.Resume())
	assert.Equal(t, 1, events[event.Paused])
	assert.Equal(t, 1, events[event.Resumed])
}

func TestSelectNearestAircraft(t *testing.T) {
	g := newTestGame(t)
	events := counter{}
	g.EventDispatcher.Subscribe(event.SelectionMade, events)

	hidden := g.AircraftSystem.SpawnWith(geom.V(100, 100), component.Velocity{Direction: geom.V(1, 0)}, component.Aircraft{Country: "DE", Purpose: defs.PurposeCivil})
	assert.False(t, g.SelectNearestAircraft(geom.V(100, 100)), "unspotted aircraft are not selectable")

	g.ECS.Aircraft[hidden].Spotted = true
	require.True(t, g.SelectNearestAircraft(geom.V(105, 100)))
	id, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, hidden, id)
	assert.True(t, g.ECS.Aircraft[hidden].Selected)

	assert.False(t, g.SelectNearestAircraft(geom.V(300, 300)))
	id, ok = g.Selected()
	assert.True(t, ok, "a miss leaves the selection alone")
	assert.Equal(t, hidden, id)

	other := placeSpotted(g, 200, 200, "IT", defs.PurposeArmy)
	require.True(t, g.SelectNearestAircraft(geom.V(200, 201)))
	assert.False(t, g.ECS.Aircraft[hidden].Selected)
	assert.True(t, g.ECS.Aircraft[other].Selected)
	assert.Equal(t, 2, events[event.SelectionMade])
}

func TestLaunchInterceptor(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.LaunchInterceptor(), "nothing selected")

	id := placeSpotted(g, 120, 120, "DE", defs.PurposeCivil)
	require.True(t, g.SelectNearestAircraft(geom.V(120, 120)))
	require.True(t, g.LaunchInterceptor())

	assert.Equal(t, 1, g.ECS.Count(component.KindInterceptor))
	_, ok := g.Selected()
	assert.False(t, ok, "launch clears the selection")
	assert.False(t, g.ECS.Aircraft[id].Selected)
	assert.False(t, g.LaunchInterceptor())
}

func TestDetonateNearestInterceptor(t *testing.T) {
	g := newTestGame(t)
	placeSpotted(g, 120, 120, "DE", defs.PurposeCivil)
	require.True(t, g.SelectNearestAircraft(geom.V(120, 120)))
	require.True(t, g.LaunchInterceptor())

	center := g.RadarSystem.Center()
	assert.False(t, g.DetonateNearestInterceptor(center.Add(geom.V(20, 0))))
	assert.True(t, g.DetonateNearestInterceptor(center.Add(geom.V(5, 0))))
	assert.Zero(t, g.ECS.Count(component.KindInterceptor))
	assert.Equal(t, 1, g.ECS.Count(component.KindBlast))
	assert.False(t, g.DetonateNearestInterceptor(center))
}

func TestSelectionDroppedWhenAircraftDies(t *testing.T) {
	g := newTestGame(t)
	id := placeSpotted(g, 150, 150, "DE", defs.PurposeArmy)
	require.True(t, g.SelectNearestAircraft(geom.V(150, 150)))

	g.BlastSystem.Spawn(geom.V(150, 150))
	assert.False(t, g.ECS.Alive(id))
	_, ok := g.Selected()
	assert.False(t, ok)
	assert.False(t, g.LaunchInterceptor())
}

func TestRecallSelected(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.RecallSelected())

	id := placeSpotted(g, 150, 150, "FR", defs.PurposeCivil)
	require.True(t, g.SelectNearestAircraft(geom.V(150, 150)))
	assert.False(t, g.RecallSelected(), "not authorized yet")

	require.True(t, g.Rules.Add(defs.Rule{Country: "FR", Purpose: defs.PurposeAll, Zone: defs.ZoneAll}))
	assert.True(t, g.RecallSelected())
	assert.True(t, g.ECS.Aircraft[id].Recalled)
}

func TestToggleRule(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.ToggleRule(false))
	assert.True(t, g.ToggleRule(true))
	assert.Len(t, g.ActiveRules(), 1)
	assert.True(t, g.ToggleRule(false))
	assert.Empty(t, g.ActiveRules())
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)
	for i := 0; i < 3000; i++ {
		a.Tick()
		b.Tick()
	}
	assert.Equal(t, a.ScoreValue(), b.ScoreValue())
	assert.Equal(t, a.ECS.NextID, b.ECS.NextID)
	assert.Equal(t, a.ActiveRules(), b.ActiveRules())
	assert.NotEqual(t, a.SessionID, b.SessionID)
}
