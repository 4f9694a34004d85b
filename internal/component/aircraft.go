// internal/component/aircraft.go
package component

import (
	"go-radar-scope/internal/defs"
	"go-radar-scope/pkg/geom"
)

// Aircraft представляет воздушное судно на экране радара.
type Aircraft struct {
	Country    string
	Purpose    defs.Purpose
	Identifier int // 1..99999, shown zero-padded

	// Spotted flips to true on the first radar sweep and never resets.
	Spotted bool
	// Authorized is re-derived from the rule set every tick.
	Authorized bool
	Selected   bool

	// Recall-to-base
	CanRecall   bool
	Recalled    bool
	ReturnPoint geom.Vec2
}
