// internal/component/visual.go
package component

// Blast is an expanding-then-shrinking detonation. Lethality is resolved once,
// when the blast is created; afterwards it is only animated.
type Blast struct {
	Radius float64
}

// Puff is a cosmetic circle: smoke trail, blast debris or a detection blip.
type Puff struct {
	ExpiresAt float64 // simulated ms
	Shrink    float64 // radius lost per tick
	MinRadius float64 // removed once the radius falls to this
	Drift     float64 // random walk amplitude per tick
}
