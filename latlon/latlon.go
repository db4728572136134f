// Package latlon computes geodesic relationships between points on the
// WGS84 ellipsoid and parses and formats the angles that describe them.
//
// All distances are expressed in nautical miles.
package latlon

import (
	"math"
	"sync"
)

const π = math.Pi

// WGS84 reference ellipsoid, in nautical miles.
const (
	A = 3443.91846652     // semi-major axis
	B = 3432.371659935205 // semi-minor axis
	F = 1 / 298.257223563 // flattening, 1 - B/A
	R = 3440.1            // mean radius used by the spherical algorithm
)

// DistancePrecision is the granularity ellipsoidal distances are rounded to
// (about 1.9 mm).
const DistancePrecision = 1e-6

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d = 0
	}
	return d
}

func roundTo(v, precision float64) float64 {
	return math.Round(v/precision) * precision
}

// once holds a value computed on first access. A nil cell computes on every
// call.
type once[T any] struct {
	sync.Once
	v T
}

func newOnce[T any]() *once[T] {
	return &once[T]{}
}

func (c *once[T]) get(compute func() T) T {
	if c == nil {
		return compute()
	}
	c.Do(func() {
		c.v = compute()
	})
	return c.v
}
