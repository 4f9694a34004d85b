package interfaces

import (
	"go-radar-scope/internal/defs"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
)

// ScopeView is the read side of the simulation that the display draws from.
type ScopeView interface {
	ScoreValue() int
	ActiveRules() []defs.Rule
	Selected() (types.EntityID, bool)
	GetGameTime() float64
	IsPaused() bool
}

// Commander is the set of operator commands. Each reports whether it took effect.
type Commander interface {
	SelectNearestAircraft(point geom.Vec2) bool
	LaunchInterceptor() bool
	DetonateNearestInterceptor(point geom.Vec2) bool
	ToggleRule(add bool) bool
	SpawnAircraft() types.EntityID
	RecallSelected() bool
	TogglePause()
}
