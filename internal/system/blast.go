// internal/system/blast.go
package system

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
)

// BlastSystem creates detonations and animates them. A blast is lethal only at
// the moment it is created; afterwards it merely shrinks away.
type BlastSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	score           *ScoreLedger
}

func NewBlastSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem, score *ScoreLedger) *BlastSystem {
	return &BlastSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		score:           score,
	}
}

// Spawn detonates at pos: every aircraft within the blast radius is scored
// and destroyed, then the debris cloud is scattered.
func (s *BlastSystem) Spawn(pos geom.Vec2) types.EntityID {
	id := s.ecs.NewEntity(component.KindBlast)
	s.ecs.Positions[id] = &component.Position{Vec2: pos}
	s.ecs.Blasts[id] = &component.Blast{Radius: config.BlastRadius}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    config.BlastColor,
		Radius:   config.BlastRadius,
		Priority: component.PriorityBlast,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.Explosion, Data: pos})

	for _, target := range s.ecs.Live(component.KindAircraft) {
		tpos, ok := s.ecs.Positions[target]
		if !ok || tpos.Dist(pos) > config.BlastRadius {
			continue
		}
		s.takedown(target)
	}

	if s.effects != nil {
		s.effects.SpawnDebris(pos)
	}
	return id
}

func (s *BlastSystem) takedown(id types.EntityID) {
	aircraft, ok := s.ecs.Aircraft[id]
	if !ok {
		return
	}
	if aircraft.Authorized {
		s.score.Add(KillCredit(aircraft.Purpose))
	} else {
		s.score.Sub(KillPenalty(aircraft.Purpose))
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.AircraftDestroyed,
		Data: aircraftInfo(id, aircraft, s.ecs.Positions[id].Vec2),
	})
	s.ecs.Remove(id)
}

// Update уменьшает радиус взрывов и удаляет догоревшие.
func (s *BlastSystem) Update() {
	for _, id := range s.ecs.Snapshot(component.KindBlast) {
		blast, ok := s.ecs.Blasts[id]
		if !ok {
			continue
		}
		blast.Radius /= config.BlastDecay
		if blast.Radius <= config.BlastMinRadius {
			s.ecs.Remove(id)
			continue
		}
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Radius = blast.Radius
		}
	}
}

// KillCredit is awarded for destroying an authorized aircraft.
func KillCredit(p defs.Purpose) int {
	if p == defs.PurposeArmy {
		return config.ScoreKillArmy
	}
	return config.ScoreKillCivil
}

// KillPenalty is charged for destroying an aircraft without authorization.
func KillPenalty(p defs.Purpose) int {
	if p == defs.PurposeArmy {
		return config.PenaltyKillArmy
	}
	return config.PenaltyKillCivil
}
