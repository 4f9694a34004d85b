// component/movement.go
package component

import "go-radar-scope/pkg/geom"

// Position — компонент позиции
type Position struct {
	geom.Vec2
}

// Velocity is a unit heading and scalar speed in units per tick.
type Velocity struct {
	Direction geom.Vec2
	Speed     float64
}
