// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Bearing converts a screen angle (0 = east, clockwise) into a compass
// bearing in whole degrees, 0 = north.
func Bearing(angle float64) int {
	deg := int(math.Round(NormalizeAngle(angle+math.Pi/2) * 180 / math.Pi))
	if deg < 0 {
		deg += 360
	}
	return deg % 360
}
