package latlon

import (
	"fmt"
	"math"
)

const (
	maxIterations = 100
	threshold     = 1e-12
)

// Vincenty solves the inverse problem on the WGS84 ellipsoid with
// Vincenty's iterative formula. Coincident points give a zero distance and
// absent bearings. ErrFailedToConverge is returned when the longitude on the
// auxiliary sphere has not settled after 100 iterations.
//
// See https://www.movable-type.co.uk/scripts/latlong-vincenty.html
func Vincenty(lat1 Latitude, lon1 Longitude, lat2 Latitude, lon2 Longitude) (Solution, error) {
	sinU1, cosU1 := lat1.Sin(), lat1.Cos()
	sinU2, cosU2 := lat2.Sin(), lat2.Cos()

	L := lon2.Sub(lon1.Angle).Radians()
	λ := L

	for i := 0; i < maxIterations; i++ {
		sinλ, cosλ := math.Sincos(λ)

		// explicit conversions prevent fused multiply-add so that coincident
		// points give exactly zero
		sinσ := math.Sqrt(sq(cosU2*sinλ) + sq(float64(cosU1*sinU2)-float64(sinU1*cosU2*cosλ)))
		if sinσ == 0 {
			// coincident points
			return Solution{}, nil
		}
		cosσ := sinU1*sinU2 + cosU1*cosU2*cosλ
		σ := math.Atan2(sinσ, cosσ)

		sinα := cosU1 * cosU2 * sinλ / sinσ
		cosSqα := 1 - sinα*sinα

		// equatorial line: cosSqα = 0
		cos2σm := 0.0
		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		}

		C := F / 16 * cosSqα * (4 + F*(4-3*cosSqα))
		λp := λ
		λ = L + (1-C)*F*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))

		if math.Abs(λ-λp) > threshold {
			continue
		}

		uSq := cosSqα * (A*A - B*B) / (B * B)
		bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
		bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
		Δσ := bigB * sinσ * (cos2σm + bigB/4*(cosσ*(-1+2*cos2σm*cos2σm)-
			bigB/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

		s := B * bigA * (σ - Δσ)

		α1 := math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)
		α2 := math.Atan2(cosU1*sinλ, cosU1*sinU2*cosλ-sinU1*cosU2)

		return Solution{
			Distance:       roundTo(s, DistancePrecision),
			InitialBearing: AngleFromRadians(α1).Abs(),
			FinalBearing:   AngleFromRadians(α2).Abs(),
		}, nil
	}

	return Solution{}, fmt.Errorf("%w after %d iterations from (%v, %v) to (%v, %v)",
		ErrFailedToConverge, maxIterations, lat1.Degrees(), lon1.Degrees(), lat2.Degrees(), lon2.Degrees())
}

func sq(x float64) float64 {
	return x * x
}
