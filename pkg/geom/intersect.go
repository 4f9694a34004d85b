// pkg/geom/intersect.go
package geom

import "math"

// Epsilon is the tolerance used by the containment tests.
const Epsilon = 1e-6

// CircleLine intersects the infinite line through p along dir with a circle.
// It returns both crossing points ordered along dir (far side first) and false
// when the line misses the circle or dir is zero.
func CircleLine(center Vec2, radius float64, p, dir Vec2) (Vec2, Vec2, bool) {
	a := dir.X*dir.X + dir.Y*dir.Y
	if a == 0 {
		return Vec2{}, Vec2{}, false
	}
	rel := p.Sub(center)
	b := 2 * (rel.X*dir.X + rel.Y*dir.Y)
	c := rel.X*rel.X + rel.Y*rel.Y - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Vec2{}, Vec2{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	return p.Add(dir.Scale(t1)), p.Add(dir.Scale(t2)), true
}

// TriangleArea returns the unsigned area of triangle abc.
func TriangleArea(a, b, c Vec2) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

// PointInTriangle reports whether p lies inside or on triangle abc using
// barycentric area ratios. Degenerate triangles contain nothing.
func PointInTriangle(p, a, b, c Vec2) bool {
	area := TriangleArea(a, b, c)
	if area < Epsilon {
		return false
	}
	alpha := TriangleArea(p, b, c) / area
	beta := TriangleArea(p, c, a) / area
	gamma := TriangleArea(p, a, b) / area

	return math.Abs(alpha+beta+gamma-1) < Epsilon &&
		alpha >= -Epsilon && beta >= -Epsilon && gamma >= -Epsilon
}
