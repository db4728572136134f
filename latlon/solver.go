package latlon

import (
	"fmt"
	"strings"
)

// Solution of the inverse geodesic problem between two points. Bearings
// are absent for coincident points.
type Solution struct {
	Distance       float64
	InitialBearing Angle
	FinalBearing   Angle
}

// Solver solves the inverse geodesic problem.
type Solver interface {
	Solve(lat1 Latitude, lon1 Longitude, lat2 Latitude, lon2 Longitude) (Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(lat1 Latitude, lon1 Longitude, lat2 Latitude, lon2 Longitude) (Solution, error)

func (f SolverFunc) Solve(lat1 Latitude, lon1 Longitude, lat2 Latitude, lon2 Longitude) (Solution, error) {
	return f(lat1, lon1, lat2, lon2)
}

// Algorithm selects how a distance is computed.
type Algorithm int

const (
	// Ellipsoidal uses Vincenty's formula on the WGS84 ellipsoid.
	Ellipsoidal Algorithm = iota
	// Spherical uses the haversine formula: faster, less accurate.
	Spherical
)

func (a Algorithm) String() string {
	switch a {
	case Ellipsoidal:
		return "ellipsoidal"
	case Spherical:
		return "spherical"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm reads an algorithm name. An empty name is Ellipsoidal.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ellipsoidal", "vincenty":
		return Ellipsoidal, nil
	case "spherical", "haversine":
		return Spherical, nil
	}
	return Ellipsoidal, fmt.Errorf("unknown algorithm %q", s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
