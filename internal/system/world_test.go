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

// recorder collects every dispatched event in order.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

var allEvents = []event.EventType{
	event.Detection, event.Explosion, event.SelectionMade, event.RuleChanged, event.ScoreChanged,
	event.AircraftSpawned, event.AircraftEscaped, event.AircraftDestroyed,
	event.InterceptorLaunched, event.InterceptorDetonated,
}

// world wires every simulation system the way the game does, minus the director.
type world struct {
	ecs          *entity.ECS
	dispatcher   *event.Dispatcher
	rec          *recorder
	rng          *utils.PRNGService
	score        *ScoreLedger
	effects      *VisualEffectSystem
	radar        *RadarSystem
	rules        *RuleEngine
	blasts       *BlastSystem
	interceptors *InterceptorSystem
	aircraft     *AircraftSystem
}

func newWorld() *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
		rng:        utils.NewPRNGService(42),
	}
	w.dispatcher.SubscribeAll(w.rec, allEvents...)
	w.score = NewScoreLedger(w.dispatcher)
	w.effects = NewVisualEffectSystem(w.ecs, w.rng)
	w.radar = NewRadarSystem(w.ecs, w.dispatcher, w.effects)
	w.rules = NewRuleEngine(w.ecs, w.dispatcher, w.rng, 15)
	w.blasts = NewBlastSystem(w.ecs, w.dispatcher, w.effects, w.score)
	w.interceptors = NewInterceptorSystem(w.ecs, w.dispatcher, w.rng, w.effects, w.blasts)
	w.aircraft = NewAircraftSystem(w.ecs, w.dispatcher, w.rng, w.radar, w.rules, w.score)
	return w
}

func (w *world) tick() {
	w.ecs.BeginFrame()
	w.ecs.GameTime += config.TickMs
	w.radar.Update()
	w.aircraft.Update()
	w.interceptors.Update()
	w.blasts.Update()
	w.effects.Update()
	w.ecs.EndFrame()
}

func (w *world) place(x, y float64, dir geom.Vec2, speed float64, country string, purpose defs.Purpose) types.EntityID {
	return w.aircraft.SpawnWith(geom.V(x, y), component.Velocity{Direction: dir, Speed: speed}, component.Aircraft{
		Country:    country,
		Purpose:    purpose,
		Identifier: 1,
	})
}

// parked places a motionless aircraft.
func (w *world) parked(x, y float64, country string, purpose defs.Purpose) types.EntityID {
	return w.place(x, y, geom.V(1, 0), 0, country, purpose)
}
