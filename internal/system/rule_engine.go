// internal/system/rule_engine.go
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

// RuleEngine holds the active no-fly rules and derives takedown
// authorization for aircraft. Authorization is the OR over all rules and is
// recomputed from scratch, never latched.
type RuleEngine struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	center          geom.Vec2
	capacity        int
	rules           []defs.Rule
}

func NewRuleEngine(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, capacity int) *RuleEngine {
	return &RuleEngine{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		center:          geom.V(config.ScopeCenterX, config.ScopeCenterY),
		capacity:        capacity,
	}
}

// Evaluate reports whether rule authorizes takedown of an aircraft at the
// given radial distance from the scope centre. It is a pure function.
func Evaluate(rule defs.Rule, aircraft *component.Aircraft, distance float64) bool {
	if rule.Country != aircraft.Country {
		return false
	}
	if rule.Purpose != defs.PurposeAll && rule.Purpose != aircraft.Purpose {
		return false
	}
	return rule.Zone == defs.ZoneAll || distance <= config.InnerRadius
}

// Rules returns a copy of the active rules in insertion order.
func (e *RuleEngine) Rules() []defs.Rule {
	out := make([]defs.Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Len returns the number of active rules.
func (e *RuleEngine) Len() int {
	return len(e.rules)
}

// CheckAircraft re-derives the authorization flag of one aircraft.
func (e *RuleEngine) CheckAircraft(id types.EntityID) {
	aircraft, ok := e.ecs.Aircraft[id]
	if !ok {
		return
	}
	pos, ok := e.ecs.Positions[id]
	if !ok {
		return
	}
	dist := pos.Dist(e.center)
	authorized := false
	for _, rule := range e.rules {
		if Evaluate(rule, aircraft, dist) {
			authorized = true
			break
		}
	}
	aircraft.Authorized = authorized
}

// CheckAll re-derives authorization for every live aircraft.
func (e *RuleEngine) CheckAll() {
	for id := range e.ecs.Aircraft {
		e.CheckAircraft(id)
	}
}

// Add appends rule unless it is off the rosters, overlaps an active rule or
// the set is full.
func (e *RuleEngine) Add(rule defs.Rule) bool {
	if !rule.Valid() || len(e.rules) >= e.capacity {
		return false
	}
	for _, r := range e.rules {
		if r.Overlaps(rule) {
			return false
		}
	}
	e.rules = append(e.rules, rule)
	e.changed(&rule, nil)
	return true
}

// Remove deletes the rule equal to rule, if present.
func (e *RuleEngine) Remove(rule defs.Rule) bool {
	for i, r := range e.rules {
		if r == rule {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			e.changed(nil, &rule)
			return true
		}
	}
	return false
}

// AddRandom draws candidate rules until one fits, giving up silently after
// a bounded number of attempts.
func (e *RuleEngine) AddRandom() (defs.Rule, bool) {
	for attempt := 0; attempt < config.RuleCandidateAttempts; attempt++ {
		rule := e.randomRule()
		if e.Add(rule) {
			return rule, true
		}
		if len(e.rules) >= e.capacity {
			break
		}
	}
	return defs.Rule{}, false
}

// RemoveRandom drops one random rule; a no-op on an empty set.
func (e *RuleEngine) RemoveRandom() (defs.Rule, bool) {
	if len(e.rules) == 0 {
		return defs.Rule{}, false
	}
	rule := e.rules[e.rng.Intn(len(e.rules))]
	return rule, e.Remove(rule)
}

func (e *RuleEngine) randomRule() defs.Rule {
	purpose := defs.PurposeAll
	if e.rng.Chance(0.65) {
		purpose = defs.FlightPurposes[e.rng.Intn(len(defs.FlightPurposes))]
	}
	return defs.Rule{
		Country: defs.Countries[e.rng.Intn(len(defs.Countries))],
		Purpose: purpose,
		Zone:    defs.Zones[e.rng.Intn(len(defs.Zones))],
	}
}

func (e *RuleEngine) changed(added, removed *defs.Rule) {
	e.CheckAll()
	if e.eventDispatcher != nil {
		e.eventDispatcher.Dispatch(event.Event{
			Type: event.RuleChanged,
			Data: event.RuleChange{Added: added, Removed: removed, Active: len(e.rules)},
		})
	}
}
