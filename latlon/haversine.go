package latlon

import "math"

// Haversine returns the great circle distance between two coordinates on a
// sphere of radius R. It never fails and is less accurate than Vincenty,
// increasingly so over long distances.
func Haversine(from, to *Coordinate) float64 {
	φ1 := from.lat.Radians()
	φ2 := to.lat.Radians()
	Δφ := φ2 - φ1

	Δλ := to.lon.Radians() - from.lon.Radians()

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * δ
}

// HaversineBearing returns the initial bearing of the great circle from one
// coordinate to another, in [0, 360).
func HaversineBearing(from, to *Coordinate) Angle {
	φ1 := from.lat.Radians()
	φ2 := to.lat.Radians()

	Δλ := to.lon.Radians() - from.lon.Radians()
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return AngleFromRadians(θ).Abs()
}
