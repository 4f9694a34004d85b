// internal/system/interceptor.go
package system

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/types"
	"go-radar-scope/internal/utils"
	"go-radar-scope/pkg/geom"
)

// InterceptorSystem наводит ракеты-перехватчики на цели (чистое преследование).
type InterceptorSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	effects         *VisualEffectSystem
	blasts          *BlastSystem
	launchPoint     geom.Vec2
}

func NewInterceptorSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, effects *VisualEffectSystem, blasts *BlastSystem) *InterceptorSystem {
	return &InterceptorSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		effects:         effects,
		blasts:          blasts,
		launchPoint:     geom.V(config.ScopeCenterX, config.ScopeCenterY),
	}
}

// StageAt returns the stage an interceptor is in after elapsed ms of flight.
func StageAt(elapsed float64) component.InterceptorStage {
	switch {
	case elapsed >= config.SpentAtMs:
		return component.StageSpent
	case elapsed >= config.TerminalAtMs:
		return component.StageTerminal
	case elapsed >= config.CruiseAtMs:
		return component.StageCruise
	default:
		return component.StageBoost
	}
}

// StageProfile returns the speed a stage eases toward and the easing factor.
func StageProfile(stage component.InterceptorStage) (targetSpeed, ease float64) {
	switch stage {
	case component.StageBoost, component.StageCruise:
		return config.BoostSpeed, config.FastEase
	case component.StageTerminal:
		return config.TerminalSpeed, config.SlowEase
	default:
		return 0, config.SlowEase
	}
}

// Launch fires an interceptor from the scope centre at target.
func (s *InterceptorSystem) Launch(target types.EntityID) (types.EntityID, bool) {
	if s.ecs.KindOf(target) != component.KindAircraft {
		return types.NoEntity, false
	}
	targetPos, ok := s.ecs.Positions[target]
	if !ok {
		return types.NoEntity, false
	}

	dir, ok := targetPos.Sub(s.launchPoint).Normalize()
	if !ok {
		dir = geom.V(1, 0)
	}
	targetSpeed, _ := StageProfile(component.StageBoost)

	id := s.ecs.NewEntity(component.KindInterceptor)
	s.ecs.Positions[id] = &component.Position{Vec2: s.launchPoint}
	s.ecs.Velocities[id] = &component.Velocity{Direction: dir}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    config.InterceptorTint,
		Radius:   config.InterceptorHalfLength,
		Priority: component.PriorityInterceptor,
	}
	s.ecs.Interceptors[id] = &component.Interceptor{
		Target:      target,
		Stage:       component.StageBoost,
		TargetSpeed: targetSpeed,
		LaunchTime:  s.ecs.GameTime,
		LastSmoke:   s.ecs.GameTime,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.InterceptorLaunched, Data: id})
	return id, true
}

// Update ведёт все ракеты, начатые до этого кадра.
func (s *InterceptorSystem) Update() {
	for _, id := range s.ecs.Snapshot(component.KindInterceptor) {
		s.step(id)
	}
}

func (s *InterceptorSystem) step(id types.EntityID) {
	ic, ok := s.ecs.Interceptors[id]
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	if pos == nil || vel == nil {
		s.ecs.Remove(id)
		return
	}

	// Стадии только растут
	if next := StageAt(s.ecs.GameTime - ic.LaunchTime); next > ic.Stage {
		ic.Stage = next
		ic.TargetSpeed, _ = StageProfile(next)
	}

	targetPos, targetAlive := s.ecs.Positions[ic.Target]
	if !targetAlive || s.ecs.KindOf(ic.Target) != component.KindAircraft {
		s.Detonate(id)
		return
	}
	exhausted := ic.Stage >= component.StageTerminal && vel.Speed <= config.DetonateSpeed
	if exhausted || targetPos.Dist(pos.Vec2) <= config.ProximityFuse {
		s.Detonate(id)
		return
	}

	if dir, ok := targetPos.Sub(pos.Vec2).Normalize(); ok {
		vel.Direction = dir
	}
	_, ease := StageProfile(ic.Stage)
	vel.Speed = geom.Lerp(vel.Speed, ic.TargetSpeed, ease)
	pos.Vec2 = pos.Add(vel.Direction.Scale(vel.Speed))

	if ic.Stage != component.StageSpent && s.ecs.GameTime-ic.LastSmoke >= config.SmokeIntervalMs {
		ic.LastSmoke = s.ecs.GameTime
		life := float64(s.rng.Between(config.SmokeMinLifeMs, config.SmokeMaxLifeMs))
		s.effects.SpawnSmoke(pos.Sub(vel.Direction.Scale(config.SmokeOffset)), s.rng.Float64()*3, life)
	}
}

// Detonate blows interceptor id up where it is. Both manual detonation and
// every automatic trigger end here.
func (s *InterceptorSystem) Detonate(id types.EntityID) bool {
	if _, ok := s.ecs.Interceptors[id]; !ok {
		return false
	}
	pos, ok := s.ecs.Positions[id]
	s.ecs.Remove(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.InterceptorDetonated, Data: id})
	if ok {
		s.blasts.Spawn(pos.Vec2)
	}
	return true
}
