// Package physics provides point-distance collision and motion helpers.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Within reports whether two points are strictly closer than limit.
func Within(x1, y1, x2, y2, limit float64) bool {
	return DistanceSquared(x1, y1, x2, y2) < limit*limit
}

// AngleTo returns the heading in radians from (x1,y1) toward (x2,y2).
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Advance moves a point distance units along angle.
func Advance(x, y, angle, distance float64) (float64, float64) {
	return x + math.Cos(angle)*distance, y + math.Sin(angle)*distance
}

// InRect reports whether (x,y) lies in the closed rectangle [0,w]x[0,h].
func InRect(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}
