// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/types"
	"go-radar-scope/internal/utils"
	"go-radar-scope/pkg/geom"
)

// VisualEffectSystem управляет косметическими эффектами: дымом, обломками и
// отметками обнаружения. Они не влияют на игровую логику.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// SpawnSmoke leaves a drifting gray puff that lives for lifeMs.
func (s *VisualEffectSystem) SpawnSmoke(pos geom.Vec2, radius, lifeMs float64) types.EntityID {
	shade := uint8(s.rng.Between(config.ShadeMin, config.ShadeMax))
	id := s.ecs.NewEntity(component.KindSmoke)
	s.ecs.Positions[id] = &component.Position{Vec2: pos}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    color.RGBA{shade, shade, shade, 255},
		Radius:   radius,
		Priority: component.PriorityEffect,
	}
	s.ecs.Puffs[id] = &component.Puff{
		ExpiresAt: s.ecs.GameTime + lifeMs,
		Drift:     config.SmokeDrift,
	}
	return id
}

// SpawnBlip marks the place where the radar first saw an aircraft.
func (s *VisualEffectSystem) SpawnBlip(pos geom.Vec2) types.EntityID {
	id := s.ecs.NewEntity(component.KindBlip)
	s.ecs.Positions[id] = &component.Position{Vec2: pos}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    config.BlipColor,
		Radius:   config.BlipRadius,
		Priority: component.PriorityEffect,
	}
	s.ecs.Puffs[id] = &component.Puff{
		ExpiresAt: s.ecs.GameTime + config.BlipLifetimeMs,
		Shrink:    config.BlipShrink,
		MinRadius: config.BlipMinRadius,
	}
	return id
}

// SpawnDebris scatters the smoke cloud left by a blast.
func (s *VisualEffectSystem) SpawnDebris(center geom.Vec2) {
	for i := 0; i < config.DebrisCount; i++ {
		offset := geom.V(s.rng.Centered(), s.rng.Centered()).Scale(config.DebrisSpread)
		radius := float64(s.rng.Between(config.DebrisMinRadius, config.DebrisMaxRadius))
		life := float64(s.rng.Between(config.DebrisMinLifeMs, config.DebrisMaxLifeMs))
		s.SpawnSmoke(center.Add(offset), radius, life)
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	for _, kind := range []component.Kind{component.KindSmoke, component.KindBlip} {
		for _, id := range s.ecs.Snapshot(kind) {
			s.step(id)
		}
	}
}

func (s *VisualEffectSystem) step(id types.EntityID) {
	puff, ok := s.ecs.Puffs[id]
	if !ok {
		return
	}
	if puff.ExpiresAt <= s.ecs.GameTime {
		s.ecs.Remove(id)
		return
	}

	if r, ok := s.ecs.Renderables[id]; ok && puff.Shrink > 0 {
		r.Radius -= puff.Shrink
		if r.Radius <= puff.MinRadius {
			s.ecs.Remove(id)
			return
		}
	}

	if pos, ok := s.ecs.Positions[id]; ok && puff.Drift > 0 {
		// Случайное блуждание, ±Drift по каждой оси
		step := geom.V(s.rng.Centered(), s.rng.Centered()).Scale(2 * puff.Drift)
		pos.Vec2 = pos.Add(step)
	}
}
