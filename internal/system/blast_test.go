package system

import (
	"testing"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/event"
	"go-radar-scope/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlastResolvesOnce(t *testing.T) {
	w := newWorld()
	p := geom.V(200, 200)
	inside := w.parked(p.X+9.9, p.Y, "DE", defs.PurposeCivil)
	outside := w.parked(p.X, p.Y+10.5, "DE", defs.PurposeCivil)

	w.blasts.Spawn(p)
	assert.False(t, w.ecs.Alive(inside))
	assert.True(t, w.ecs.Alive(outside))
	assert.Equal(t, -config.PenaltyKillCivil, w.score.Value())

	for i := 0; i < 100; i++ {
		w.blasts.Update()
	}
	assert.True(t, w.ecs.Alive(outside), "lethality is not re-checked while shrinking")
	assert.Equal(t, -config.PenaltyKillCivil, w.score.Value())
	assert.Equal(t, 1, w.rec.count(event.AircraftDestroyed))
	assert.Equal(t, 1, w.rec.count(event.Explosion))
}

func TestBlastKillScoring(t *testing.T) {
	tests := []struct {
		name       string
		purpose    defs.Purpose
		authorized bool
		want       int
	}{
		{"authorized civil", defs.PurposeCivil, true, config.ScoreKillCivil},
		{"authorized army", defs.PurposeArmy, true, config.ScoreKillArmy},
		{"wrongful civil", defs.PurposeCivil, false, -config.PenaltyKillCivil},
		{"wrongful army", defs.PurposeArmy, false, -config.PenaltyKillArmy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			if tt.authorized {
				w.rules.Add(defs.Rule{Country: "UK", Purpose: defs.PurposeAll, Zone: defs.ZoneAll})
			}
			id := w.parked(300, 300, "UK", tt.purpose)
			require.Equal(t, tt.authorized, w.ecs.Aircraft[id].Authorized)

			w.blasts.Spawn(geom.V(300, 300))
			assert.Equal(t, tt.want, w.score.Value())
		})
	}
}

func TestBlastDecay(t *testing.T) {
	w := newWorld()
	id := w.blasts.Spawn(geom.V(50, 50))

	w.blasts.Update()
	assert.InDelta(t, config.BlastRadius/config.BlastDecay, w.ecs.Blasts[id].Radius, 1e-12)
	assert.InDelta(t, w.ecs.Blasts[id].Radius, w.ecs.Renderables[id].Radius, 1e-12)

	// 10 / 1.1^n falls to 0.1 between n = 48 and n = 49.
	for i := 1; i < 48; i++ {
		w.blasts.Update()
	}
	require.True(t, w.ecs.Alive(id))
	w.blasts.Update()
	assert.False(t, w.ecs.Alive(id))
}

func TestBlastScattersDebris(t *testing.T) {
	w := newWorld()
	center := geom.V(100, 100)
	w.blasts.Spawn(center)

	debris := w.ecs.Live(component.KindSmoke)
	require.Len(t, debris, config.DebrisCount)
	for _, id := range debris {
		pos := w.ecs.Positions[id]
		r := w.ecs.Renderables[id]
		assert.LessOrEqual(t, pos.Sub(center).X, config.DebrisSpread/2)
		assert.GreaterOrEqual(t, pos.Sub(center).X, -config.DebrisSpread/2)
		assert.GreaterOrEqual(t, r.Radius, float64(config.DebrisMinRadius))
		assert.LessOrEqual(t, r.Radius, float64(config.DebrisMaxRadius))
		assert.Equal(t, component.PriorityEffect, r.Priority)
	}
}
