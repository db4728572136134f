package latlon

import (
	"fmt"
	"math"
)

// Coordinate is a position on the earth. It remembers the geodesics solved
// from it, keyed by the position of the other end.
//
// A Coordinate is not safe for concurrent use.
type Coordinate struct {
	lat       Latitude
	lon       Longitude
	solver    Solver
	solutions map[point]Solution
}

type point struct {
	lat, lon float64
}

// Option configures a Coordinate.
type Option func(*Coordinate)

// WithSolver replaces the ellipsoidal solver, Vincenty by default.
func WithSolver(s Solver) Option {
	return func(c *Coordinate) {
		c.solver = s
	}
}

func NewCoordinate(lat Latitude, lon Longitude, opts ...Option) *Coordinate {
	c := &Coordinate{
		lat:       lat,
		lon:       lon,
		solver:    SolverFunc(Vincenty),
		solutions: make(map[point]Solution),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// At returns the coordinate of the given latitude and longitude in degrees.
func At(lat, lon float64, opts ...Option) *Coordinate {
	return NewCoordinate(NewLatitude(lat), NewLongitude(lon), opts...)
}

// ParseCoordinate reads a latitude and a longitude in any notation accepted
// by ParseLatitude and ParseLongitude.
func ParseCoordinate(lat, lon string, opts ...Option) (*Coordinate, error) {
	φ, err := ParseLatitude(lat)
	if err != nil {
		return nil, err
	}
	λ, err := ParseLongitude(lon)
	if err != nil {
		return nil, err
	}
	return NewCoordinate(φ, λ, opts...), nil
}

func (c *Coordinate) Latitude() Latitude {
	return c.lat
}

func (c *Coordinate) Longitude() Longitude {
	return c.lon
}

// Valid reports whether both components are present and within ±90° and
// ±180°.
func (c *Coordinate) Valid() bool {
	return c.complete() && math.Abs(c.lat.degrees) <= 90 && math.Abs(c.lon.degrees) <= 180
}

func (c *Coordinate) complete() bool {
	return c.lat.set && c.lon.set
}

func (c *Coordinate) Equal(o *Coordinate) bool {
	return c.lat.Equal(o.lat) && c.lon.Equal(o.lon)
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("%s, %s", c.lat, c.lon)
}

func (c *Coordinate) key() point {
	return point{lat: c.lat.degrees, lon: c.lon.degrees}
}

// SolutionTo returns the ellipsoidal solution of the geodesic from c to
// other. The first call for a given other solves it, later calls reuse the
// result. Failures are not remembered.
func (c *Coordinate) SolutionTo(other *Coordinate) (Solution, error) {
	if !c.complete() || !other.complete() {
		return Solution{}, ErrIncompleteCoordinate
	}

	k := other.key()
	if s, ok := c.solutions[k]; ok {
		return s, nil
	}

	s, err := c.solver.Solve(c.lat, c.lon, other.lat, other.lon)
	if err != nil {
		return Solution{}, err
	}
	c.solutions[k] = s
	return s, nil
}

// DistanceTo returns the ellipsoidal distance to other in nautical miles.
func (c *Coordinate) DistanceTo(other *Coordinate) (float64, error) {
	s, err := c.SolutionTo(other)
	return s.Distance, err
}

// DistanceBy returns the distance to other computed with the given
// algorithm. Spherical distances bypass the solution cache.
func (c *Coordinate) DistanceBy(other *Coordinate, algorithm Algorithm) (float64, error) {
	switch algorithm {
	case Ellipsoidal:
		return c.DistanceTo(other)
	case Spherical:
		if !c.complete() || !other.complete() {
			return 0, ErrIncompleteCoordinate
		}
		return Haversine(c, other), nil
	}
	return 0, fmt.Errorf("unknown algorithm %v", algorithm)
}

// InitialHeadingTo returns the bearing at c of the geodesic to other.
func (c *Coordinate) InitialHeadingTo(other *Coordinate) (Angle, error) {
	s, err := c.SolutionTo(other)
	return s.InitialBearing, err
}

// FinalHeadingFrom returns the bearing on arrival at other of the geodesic
// from c. It shares the solution of DistanceTo and InitialHeadingTo.
func (c *Coordinate) FinalHeadingFrom(other *Coordinate) (Angle, error) {
	s, err := c.SolutionTo(other)
	return s.FinalBearing, err
}

// NewPosition returns the coordinate reached from c following heading for
// distance nautical miles. c is left untouched.
func (c *Coordinate) NewPosition(heading Angle, distance float64) *Coordinate {
	p := NewCoordinate(c.lat, c.lon, WithSolver(c.solver))
	return p.Move(heading, distance)
}

// Move is NewPosition in place. Solutions remembered from the previous
// position are dropped.
func (c *Coordinate) Move(heading Angle, distance float64) *Coordinate {
	δ := AngleFromRadians(distance / A)

	φ2 := LatitudeFromRadians(math.Asin(c.lat.Sin()*δ.Cos() + c.lat.Cos()*δ.Sin()*heading.Cos()))
	λ2 := LongitudeFromRadians(c.lon.Radians() +
		math.Atan2(heading.Sin()*δ.Sin()*c.lat.Cos(), δ.Cos()-c.lat.Sin()*φ2.Sin()))

	c.lat = φ2
	c.lon = λ2
	c.solutions = make(map[point]Solution)
	return c
}
