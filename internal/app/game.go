// internal/app/game.go
package app

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/event"
	"go-radar-scope/internal/system"
	"go-radar-scope/internal/types"
	"go-radar-scope/internal/utils"
	"go-radar-scope/pkg/geom"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// tickSlack absorbs float error when a frame lasts exactly one tick.
const tickSlack = 1e-6

// Game holds the simulation state and the command surface used by input.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Score              *system.ScoreLedger
	Rules              *system.RuleEngine
	RadarSystem        *system.RadarSystem
	AircraftSystem     *system.AircraftSystem
	InterceptorSystem  *system.InterceptorSystem
	BlastSystem        *system.BlastSystem
	VisualEffectSystem *system.VisualEffectSystem
	Director           *system.Director
	SessionID          string

	logger      zerolog.Logger
	accumulator float64 // simulated ms not yet consumed by a tick
	ticks       uint64
	selected    types.EntityID
}

// NewGame initializes a new game instance.
func NewGame(settings config.Settings, logger zerolog.Logger) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	session := uuid.NewString()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		SessionID:       session,
		logger:          logger.With().Str("session", session).Logger(),
	}
	g.Score = system.NewScoreLedger(eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.RadarSystem = system.NewRadarSystem(ecs, eventDispatcher, g.VisualEffectSystem)
	g.Rules = system.NewRuleEngine(ecs, eventDispatcher, rng, settings.Rules.Capacity)
	g.BlastSystem = system.NewBlastSystem(ecs, eventDispatcher, g.VisualEffectSystem, g.Score)
	g.InterceptorSystem = system.NewInterceptorSystem(ecs, eventDispatcher, rng, g.VisualEffectSystem, g.BlastSystem)
	g.AircraftSystem = system.NewAircraftSystem(ecs, eventDispatcher, rng, g.RadarSystem, g.Rules, g.Score)
	g.Director = system.NewDirector(ecs, rng, g.AircraftSystem, g.Rules, settings.Director, settings.Rules.MaxAuto)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.AircraftSpawned,
		event.AircraftEscaped,
		event.AircraftDestroyed,
		event.InterceptorLaunched,
		event.InterceptorDetonated,
		event.RuleChanged,
		event.Paused,
		event.Resumed,
	)

	g.logger.Info().Int64("seed", rng.Seed()).Msg("Scope session started")
	return g
}

// Logger returns the session logger.
func (g *Game) Logger() zerolog.Logger {
	return g.logger
}

// Update consumes deltaTime seconds of wall time as whole fixed ticks. A
// paused game consumes nothing, so every timer freezes with it.
func (g *Game) Update(deltaTime float64) int {
	if g.IsPaused() {
		return 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.accumulator += deltaTime * 1000

	n := 0
	for g.accumulator+tickSlack >= config.TickMs && n < config.MaxTicksPerUpdate {
		g.Tick()
		g.accumulator -= config.TickMs
		n++
	}
	if n == config.MaxTicksPerUpdate {
		// Отставание отбрасываем, чтобы не догонять бесконечно
		g.accumulator = 0
	}
	return n
}

// Tick advances the simulation by exactly one fixed step.
func (g *Game) Tick() {
	g.ECS.BeginFrame()
	g.ECS.GameTime += config.TickMs

	g.Director.Update()
	g.RadarSystem.Update()
	g.AircraftSystem.Update()
	g.InterceptorSystem.Update()
	g.BlastSystem.Update()
	g.VisualEffectSystem.Update()

	g.ECS.EndFrame()
	g.ticks++
}

// Ticks returns the number of simulation steps taken.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// GetGameTime returns simulated milliseconds since start.
func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

func (g *Game) IsPaused() bool {
	return g.ECS.GameState == component.PausedState
}

// Pause freezes the simulation. Pausing twice is a no-op.
func (g *Game) Pause() bool {
	if g.IsPaused() {
		return false
	}
	g.ECS.GameState = component.PausedState
	g.EventDispatcher.Dispatch(event.Event{Type: event.Paused})
	return true
}

// Resume continues a paused simulation.
func (g *Game) Resume() bool {
	if !g.IsPaused() {
		return false
	}
	g.ECS.GameState = component.RunningState
	g.accumulator = 0
	g.EventDispatcher.Dispatch(event.Event{Type: event.Resumed})
	return true
}

// TogglePause flips between running and paused.
func (g *Game) TogglePause() {
	if !g.Pause() {
		g.Resume()
	}
}

// Selected returns the selected aircraft, if it is still alive.
func (g *Game) Selected() (types.EntityID, bool) {
	if g.selected == types.NoEntity || !g.ECS.Alive(g.selected) {
		g.selected = types.NoEntity
		return types.NoEntity, false
	}
	return g.selected, true
}

// SelectNearestAircraft selects the spotted aircraft closest to point within
// the pick radius. With nothing in reach the selection is left as is.
func (g *Game) SelectNearestAircraft(point geom.Vec2) bool {
	id, ok := g.ECS.FindNearestMatching(component.KindAircraft, point, func(id types.EntityID) bool {
		return g.ECS.Aircraft[id].Spotted
	})
	if !ok || g.ECS.Positions[id].Dist(point) > config.SelectRadius {
		return false
	}

	g.clearSelection()
	g.selected = id
	aircraft := g.ECS.Aircraft[id]
	aircraft.Selected = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.SelectionMade, Data: id})
	return true
}

func (g *Game) clearSelection() {
	if aircraft, ok := g.ECS.Aircraft[g.selected]; ok {
		aircraft.Selected = false
	}
	g.selected = types.NoEntity
}

// LaunchInterceptor fires at the selected aircraft and clears the selection.
func (g *Game) LaunchInterceptor() bool {
	target, ok := g.Selected()
	if !ok {
		return false
	}
	g.clearSelection()
	_, launched := g.InterceptorSystem.Launch(target)
	return launched
}

// DetonateNearestInterceptor blows up the interceptor closest to point if it
// is within the pick radius.
func (g *Game) DetonateNearestInterceptor(point geom.Vec2) bool {
	id, ok := g.ECS.FindNearest(component.KindInterceptor, point)
	if !ok || g.ECS.Positions[id].Dist(point) > config.SelectRadius {
		return false
	}
	return g.InterceptorSystem.Detonate(id)
}

// ToggleRule adds or removes one random rule.
func (g *Game) ToggleRule(add bool) bool {
	if add {
		_, ok := g.Rules.AddRandom()
		return ok
	}
	_, ok := g.Rules.RemoveRandom()
	return ok
}

// SpawnAircraft forces a random aircraft into the scope.
func (g *Game) SpawnAircraft() types.EntityID {
	return g.AircraftSystem.Spawn()
}

// RecallSelected orders the selected aircraft back to base.
func (g *Game) RecallSelected() bool {
	id, ok := g.Selected()
	if !ok {
		return false
	}
	return g.AircraftSystem.Recall(id)
}

// ScoreValue returns the current score.
func (g *Game) ScoreValue() int {
	return g.Score.Value()
}

// ActiveRules returns the no-fly list in insertion order.
func (g *Game) ActiveRules() []defs.Rule {
	return g.Rules.Rules()
}

// GameEventListener logs lifecycle events and keeps the selection in sync.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.logger
	switch e.Type {
	case event.AircraftSpawned:
		if info, ok := e.Data.(event.AircraftInfo); ok {
			log.Debug().Uint64("id", uint64(info.ID)).Str("country", info.Country).
				Str("purpose", string(info.Purpose)).Bool("authorized", info.Authorized).
				Msg("Aircraft spawned")
		}
	case event.AircraftEscaped, event.AircraftDestroyed:
		if info, ok := e.Data.(event.AircraftInfo); ok {
			if info.ID == l.game.selected {
				l.game.selected = types.NoEntity
			}
			log.Debug().Str("event", string(e.Type)).Uint64("id", uint64(info.ID)).
				Str("country", info.Country).Bool("authorized", info.Authorized).
				Bool("recalled", info.Recalled).Int("score", l.game.Score.Value()).
				Msg("Aircraft gone")
		}
	case event.InterceptorLaunched, event.InterceptorDetonated:
		if id, ok := e.Data.(types.EntityID); ok {
			log.Debug().Str("event", string(e.Type)).Uint64("id", uint64(id)).Msg("Interceptor")
		}
	case event.RuleChanged:
		if rc, ok := e.Data.(event.RuleChange); ok {
			ev := log.Info().Int("active", rc.Active)
			if rc.Added != nil {
				ev = ev.Str("added", rc.Added.String())
			}
			if rc.Removed != nil {
				ev = ev.Str("removed", rc.Removed.String())
			}
			ev.Msg("No-fly list changed")
		}
	case event.Paused:
		log.Info().Float64("gameTime", l.game.ECS.GameTime).Msg("Paused")
	case event.Resumed:
		log.Info().Float64("gameTime", l.game.ECS.GameTime).Msg("Resumed")
	}
}
