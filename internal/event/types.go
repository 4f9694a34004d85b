// internal/event/types.go
package event

import (
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
)

const (
	Detection     EventType = "detection"     // Самолёт впервые попал под луч
	Explosion     EventType = "explosion"     // Взрыв перехватчика
	SelectionMade EventType = "selectionMade" // Выбран самолёт
	RuleChanged   EventType = "ruleChanged"   // Список правил изменился
	ScoreChanged  EventType = "scoreChanged"  // Счёт изменился

	AircraftSpawned      EventType = "aircraftSpawned"
	AircraftEscaped      EventType = "aircraftEscaped"
	AircraftDestroyed    EventType = "aircraftDestroyed"
	InterceptorLaunched  EventType = "interceptorLaunched"
	InterceptorDetonated EventType = "interceptorDetonated"
	Paused               EventType = "paused"
	Resumed              EventType = "resumed"
)

// AircraftInfo is the payload of aircraft lifecycle events.
type AircraftInfo struct {
	ID         types.EntityID
	Country    string
	Purpose    defs.Purpose
	Position   geom.Vec2
	Authorized bool
	Recalled   bool
}

// ScoreDelta is the payload of ScoreChanged.
type ScoreDelta struct {
	Delta int
	Total int
}

// RuleChange is the payload of RuleChanged.
type RuleChange struct {
	Added   *defs.Rule
	Removed *defs.Rule
	Active  int
}
