// component/render.go
package component

import "image/color"

// Draw priorities, lower is drawn first.
const (
	PriorityEffect      = 1
	PriorityBlast       = 2
	PriorityAircraft    = 3
	PriorityInterceptor = 4
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color    color.RGBA
	Radius   float64
	Priority int
}
