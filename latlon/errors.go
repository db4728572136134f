package latlon

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAngle is returned when a string matches none of the
	// accepted angle notations.
	ErrMalformedAngle = errors.New("malformed angle")
	// ErrCompassMismatch is returned when a compass point does not belong to
	// the axis being parsed, e.g. "10 E" for a latitude.
	ErrCompassMismatch = errors.New("compass point not valid for axis")
	// ErrFailedToConverge is returned by Vincenty when the iteration limit is
	// reached, typically for nearly antipodal points.
	ErrFailedToConverge = errors.New("vincenty formula failed to converge")
	// ErrIncompleteCoordinate is returned when a geodesic is requested from or
	// to a coordinate missing its latitude or longitude.
	ErrIncompleteCoordinate = errors.New("coordinate is missing latitude or longitude")
)

// ParseError describes a string that could not be read as an angle.
type ParseError struct {
	Input string
	Axis  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Axis, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
