// internal/system/aircraft.go
package system

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/types"
	"go-radar-scope/internal/utils"
	"go-radar-scope/pkg/geom"
)

// AircraftSystem spawns aircraft, moves them across the scope and settles
// their escape.
type AircraftSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	radar           *RadarSystem
	rules           *RuleEngine
	score           *ScoreLedger
}

func NewAircraftSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, radar *RadarSystem, rules *RuleEngine, score *ScoreLedger) *AircraftSystem {
	return &AircraftSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		radar:           radar,
		rules:           rules,
		score:           score,
	}
}

// Spawn creates a random aircraft on the top or bottom edge, heading for a
// random point on the opposite edge.
func (s *AircraftSystem) Spawn() types.EntityID {
	startY, endY := 0.0, float64(config.PlayHeight)
	if s.rng.Intn(2) == 1 {
		startY, endY = endY, startY
	}
	span := float64(config.ScreenWidth - config.SpawnMargin)
	start := geom.V(span*s.rng.Float64(), startY)
	end := geom.V(span*s.rng.Float64(), endY)
	dir, _ := end.Sub(start).Normalize()

	speed := s.rng.Float64() * config.AircraftMaxSpeed
	if speed < config.AircraftMinSpeed {
		speed = config.AircraftMinSpeed
	}

	purpose := defs.PurposeArmy
	if s.rng.Chance(config.CivilShare) {
		purpose = defs.PurposeCivil
	}

	return s.SpawnWith(start, component.Velocity{Direction: dir, Speed: speed}, component.Aircraft{
		Country:     defs.Countries[s.rng.Intn(len(defs.Countries))],
		Purpose:     purpose,
		Identifier:  s.rng.Between(1, 99999),
		CanRecall:   s.rng.Chance(config.RecallShare),
		ReturnPoint: geom.V(float64(s.rng.Between(0, int(config.PlayWidth))), startY),
	})
}

// SpawnWith places a fully described aircraft. Authorization is derived
// immediately; flags that are not spawn-time data are reset.
func (s *AircraftSystem) SpawnWith(pos geom.Vec2, vel component.Velocity, craft component.Aircraft) types.EntityID {
	craft.Spotted, craft.Selected, craft.Recalled, craft.Authorized = false, false, false, false

	id := s.ecs.NewEntity(component.KindAircraft)
	s.ecs.Positions[id] = &component.Position{Vec2: pos}
	s.ecs.Velocities[id] = &vel
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    config.AircraftColor,
		Radius:   2.5,
		Priority: component.PriorityAircraft,
	}
	s.ecs.Aircraft[id] = &craft
	s.rules.CheckAircraft(id)

	s.eventDispatcher.Dispatch(event.Event{Type: event.AircraftSpawned, Data: aircraftInfo(id, &craft, pos)})
	return id
}

// Update двигает самолёты, учитывает уход за границы, обнаружение и
// разрешения.
func (s *AircraftSystem) Update() {
	for _, id := range s.ecs.Snapshot(component.KindAircraft) {
		s.step(id)
	}
}

func (s *AircraftSystem) step(id types.EntityID) {
	aircraft, ok := s.ecs.Aircraft[id]
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	if pos == nil || vel == nil {
		s.ecs.Remove(id)
		return
	}

	pos.Vec2 = pos.Add(vel.Direction.Scale(vel.Speed))
	if OutOfBounds(pos.Vec2) {
		s.escape(id, aircraft, pos.Vec2)
		return
	}

	s.radar.Detect(id)
	s.rules.CheckAircraft(id)

	if aircraft.Recalled {
		if target, ok := aircraft.ReturnPoint.Sub(pos.Vec2).Normalize(); ok {
			if dir, ok := vel.Direction.Lerp(target, config.RecallSteer).Normalize(); ok {
				vel.Direction = dir
			}
		}
	}
}

// OutOfBounds reports whether p has left the play area.
func OutOfBounds(p geom.Vec2) bool {
	return p.Y < 0 || p.Y > config.PlayHeight || p.X < 0 || p.X > config.PlayWidth
}

// EscapeScore returns the signed score for an aircraft leaving the scope.
func EscapeScore(a *component.Aircraft) int {
	switch {
	case a.Recalled:
		return config.ScoreRecalled
	case a.Authorized:
		return -config.ScoreEscapeAuthorized
	default:
		return config.ScoreEscape
	}
}

func (s *AircraftSystem) escape(id types.EntityID, aircraft *component.Aircraft, pos geom.Vec2) {
	if v := EscapeScore(aircraft); v >= 0 {
		s.score.Add(v)
	} else {
		s.score.Sub(v)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.AircraftEscaped, Data: aircraftInfo(id, aircraft, pos)})
	s.ecs.Remove(id)
}

// Recall orders a selected civil aircraft back to base. Only authorized,
// recall-capable aircraft that are not already returning accept.
func (s *AircraftSystem) Recall(id types.EntityID) bool {
	aircraft, ok := s.ecs.Aircraft[id]
	if !ok {
		return false
	}
	if aircraft.Purpose != defs.PurposeCivil || !aircraft.CanRecall || !aircraft.Authorized || aircraft.Recalled {
		return false
	}
	aircraft.Recalled = true
	return true
}
