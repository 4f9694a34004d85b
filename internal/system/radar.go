// internal/system/radar.go
package system

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
)

// RadarSystem вращает луч радара и отмечает самолёты, попавшие под него.
type RadarSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	center          geom.Vec2
}

func NewRadarSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *RadarSystem {
	if ecs.Beam == nil {
		ecs.Beam = &component.RadarBeam{
			Period: config.SweepPeriod,
			Trail:  config.SweepTrail,
			Range:  config.SweepRange,
		}
	}
	return &RadarSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		center:          geom.V(config.ScopeCenterX, config.ScopeCenterY),
	}
}

// Update advances the beam by one tick.
func (s *RadarSystem) Update() {
	s.ecs.Beam.Tick += config.TickMs
}

// Center returns the scope centre the beam rotates around.
func (s *RadarSystem) Center() geom.Vec2 {
	return s.center
}

// Wedge returns the illuminated triangle: the centre, the leading ray end
// and the trailing ray end.
func (s *RadarSystem) Wedge() (geom.Vec2, geom.Vec2, geom.Vec2) {
	beam := s.ecs.Beam
	lead := s.center.Add(geom.FromAngle(beam.Angle()).Scale(beam.Range))
	trail := s.center.Add(geom.FromAngle(beam.TrailAngle()).Scale(beam.Range))
	return s.center, lead, trail
}

// Contains reports whether p lies inside the current sweep wedge.
func (s *RadarSystem) Contains(p geom.Vec2) bool {
	a, b, c := s.Wedge()
	return geom.PointInTriangle(p, a, b, c)
}

// Detect marks an unspotted aircraft as spotted if the beam covers it. The
// first detection leaves a blip and raises Detection; spotted never reverts.
func (s *RadarSystem) Detect(id types.EntityID) bool {
	aircraft, ok := s.ecs.Aircraft[id]
	if !ok || aircraft.Spotted {
		return false
	}
	pos, ok := s.ecs.Positions[id]
	if !ok || !s.Contains(pos.Vec2) {
		return false
	}

	aircraft.Spotted = true
	if s.effects != nil {
		s.effects.SpawnBlip(pos.Vec2)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.Detection, Data: aircraftInfo(id, aircraft, pos.Vec2)})
	return true
}

func aircraftInfo(id types.EntityID, a *component.Aircraft, pos geom.Vec2) event.AircraftInfo {
	return event.AircraftInfo{
		ID:         id,
		Country:    a.Country,
		Purpose:    a.Purpose,
		Position:   pos,
		Authorized: a.Authorized,
		Recalled:   a.Recalled,
	}
}
