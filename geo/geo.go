package geo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Perp returns the counterclockwise perpendicular of v.
func Perp(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}

// Unit returns v scaled to length 1. The zero vector maps to itself.
func Unit(v r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return v
	}

	return r2.Scale(1/n, v)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Angle returns the direction of v in radians, counterclockwise from +X,
// in (-π, π].
func Angle(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing in direction rad.
func FromAngle(rad float64) r2.Vec {
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Rotate rotates v by rad counterclockwise around the origin.
func Rotate(v r2.Vec, rad float64) r2.Vec {
	sin, cos := math.Sincos(rad)
	return r2.Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// NormalizeAngle maps rad into [0, 2π).
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}

	return rad
}

// Lerp interpolates between a and b: t=0 → a, t=1 → b.
func Lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// Side reports which side of the directed line a→b the point p lies on:
// +1 left, -1 right, 0 exactly on the line. The zero case is an exact
// floating-point zero; callers depend on exact ties.
func Side(p, a, b r2.Vec) int {
	cross := r2.Cross(r2.Sub(b, a), r2.Sub(p, a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// FindParallel returns the segment parallel to a→b at signed distance d:
// positive d offsets to the left of the direction of travel. A zero-length
// segment is returned unchanged.
func FindParallel(a, b r2.Vec, d float64) (r2.Vec, r2.Vec) {
	dir := r2.Sub(b, a)
	if r2.Norm(dir) == 0 {
		return a, b
	}
	off := r2.Scale(d, Unit(Perp(dir)))

	return r2.Add(a, off), r2.Add(b, off)
}

// ClipSegment shortens segment a→b by ra at the a end and rb at the b end.
// When the segment is too short to clip (length ≤ ra+rb) or degenerate,
// the inputs are returned unchanged.
func ClipSegment(a, b r2.Vec, ra, rb float64) (r2.Vec, r2.Vec) {
	length := Dist(a, b)
	if length == 0 || ra+rb >= length {
		return a, b
	}
	u := Unit(r2.Sub(b, a))

	return r2.Add(a, r2.Scale(ra, u)), r2.Sub(b, r2.Scale(rb, u))
}

// PolygonCentroid returns the vertex centroid (arithmetic mean) of pts.
// The empty polygon maps to the origin.
func PolygonCentroid(pts []r2.Vec) r2.Vec {
	if len(pts) == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range pts {
		sum = r2.Add(sum, p)
	}

	return r2.Scale(1/float64(len(pts)), sum)
}
