// internal/component/rotating_beam.go
package component

// RadarBeam holds the state of the rotating radar sweep.
type RadarBeam struct {
	// Tick is accumulated simulated ms; the beam angle is Tick/Period radians.
	Tick float64
	// Period is the number of ms per radian of rotation.
	Period float64
	// Trail is the angular width of the sweep wedge, in ms of beam travel.
	Trail float64
	// Range is the length of both wedge rays.
	Range float64
}

// Angle returns the current leading edge angle in radians.
func (b *RadarBeam) Angle() float64 {
	return b.Tick / b.Period
}

// TrailAngle returns the trailing edge angle in radians.
func (b *RadarBeam) TrailAngle() float64 {
	return (b.Tick - b.Trail) / b.Period
}
