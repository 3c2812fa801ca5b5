// Package trig holds the law of cosines, which every joint solver in this
// module is built on.
//
// See: http://en.wikipedia.org/wiki/Solution_of_triangles
package trig

import (
	"math"
)

// SideFromAngle returns the length of the side opposite the given angle (in
// radians), given the lengths of the two sides which enclose it.
func SideFromAngle(angle float64, a float64, b float64) float64 {
	return math.Sqrt((a * a) + (b * b) - (2 * a * b * math.Cos(angle)))
}

// AngleFromSides returns the angle (in radians) opposite side c, given the
// lengths of all three sides. Sides which can't form a triangle produce NaN,
// and callers rely on that to detect unreachable targets.
func AngleFromSides(c float64, a float64, b float64) float64 {
	return math.Acos(((a * a) + (b * b) - (c * c)) / (2 * a * b))
}
