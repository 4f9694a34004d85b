// internal/system/director.go
package system

import (
	"go-radar-scope/internal/config"
	"go-radar-scope/internal/entity"
	"go-radar-scope/internal/utils"
)

// Director schedules aircraft spawns and rule churn on the simulated clock.
type Director struct {
	ecs       *entity.ECS
	rng       *utils.PRNGService
	aircraft  *AircraftSystem
	rules     *RuleEngine
	settings  config.DirectorSettings
	maxAuto   int
	nextSpawn float64
	nextRule  float64
}

func NewDirector(ecs *entity.ECS, rng *utils.PRNGService, aircraft *AircraftSystem, rules *RuleEngine, settings config.DirectorSettings, maxAuto int) *Director {
	return &Director{
		ecs:       ecs,
		rng:       rng,
		aircraft:  aircraft,
		rules:     rules,
		settings:  settings,
		maxAuto:   maxAuto,
		nextSpawn: ecs.GameTime,
		nextRule:  ecs.GameTime + float64(settings.FirstRuleMs),
	}
}

// Update fires every timer that is due.
func (d *Director) Update() {
	now := d.ecs.GameTime
	if now >= d.nextSpawn {
		d.aircraft.Spawn()
		d.nextSpawn = now + float64(d.rng.Between(d.settings.SpawnMinMs, d.settings.SpawnMaxMs))
	}
	if now >= d.nextRule {
		d.churn()
		d.nextRule = now + float64(d.rng.Between(d.settings.RuleMinMs, d.settings.RuleMaxMs))
	}
}

// NextSpawn and NextRuleChange return the simulated ms of the pending timers.
func (d *Director) NextSpawn() float64      { return d.nextSpawn }
func (d *Director) NextRuleChange() float64 { return d.nextRule }

// churn grows the rule set while it is small and keeps it below maxAuto.
func (d *Director) churn() {
	n := d.rules.Len()
	switch {
	case n <= config.RuleGrowUntil:
		d.rules.AddRandom()
	case n < d.maxAuto:
		if d.rng.Chance(config.RuleAddShare) {
			d.rules.AddRandom()
		} else {
			d.rules.RemoveRandom()
		}
	default:
		d.rules.RemoveRandom()
	}
}
