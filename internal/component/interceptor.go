// internal/component/interceptor.go
package component

import "go-radar-scope/internal/types"

// InterceptorStage is the flight phase of a guided interceptor. Stages only
// ever advance.
type InterceptorStage uint8

const (
	StageBoost InterceptorStage = iota
	StageCruise
	StageTerminal
	StageSpent
)

func (s InterceptorStage) String() string {
	switch s {
	case StageBoost:
		return "BOOST"
	case StageCruise:
		return "CRUISE"
	case StageTerminal:
		return "TERMINAL"
	default:
		return "SPENT"
	}
}

// Interceptor представляет летящую ракету-перехватчик.
type Interceptor struct {
	// Target is a weak handle; it must be resolved through the registry every tick.
	Target      types.EntityID
	Stage       InterceptorStage
	TargetSpeed float64
	LaunchTime  float64 // simulated ms
	LastSmoke   float64 // simulated ms
}
