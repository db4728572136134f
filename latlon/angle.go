package latlon

import (
	"math"
)

// Angle is an angle or heading. It is stored in degrees; radians and the
// reduced latitude trigonometry are derived on first use and kept.
type Angle struct {
	axis    *Axis
	degrees float64
	set     bool
	radians *once[float64]
	trig    *once[trio]
}

// trio is the sine, cosine and tangent of the reduced latitude.
type trio struct {
	sin, cos, tan float64
}

func newAngle(axis *Axis, degrees float64, set bool) Angle {
	return Angle{
		axis:    axis,
		degrees: degrees,
		set:     set,
		radians: newOnce[float64](),
		trig:    newOnce[trio](),
	}
}

// NewAngle returns an angle of the given degrees.
func NewAngle(degrees float64) Angle {
	return newAngle(&AngleAxis, degrees, true)
}

// AngleFromRadians returns an angle of the given radians.
func AngleFromRadians(radians float64) Angle {
	return NewAngle(toDegrees(radians))
}

// ParseAngle reads a heading or any angle not tied to an axis. Compass
// points are rejected.
func ParseAngle(s string) (Angle, error) {
	return parseAngle(s, &AngleAxis)
}

func parseAngle(s string, axis *Axis) (Angle, error) {
	degrees, ok, err := ParseDegrees(s, *axis)
	if err != nil {
		return Angle{}, err
	}
	return newAngle(axis, degrees, ok), nil
}

func (a Angle) Axis() Axis {
	if a.axis == nil {
		return AngleAxis
	}
	return *a.axis
}

func (a Angle) Degrees() float64 {
	return a.degrees
}

// IsSet reports whether the angle holds a value. Parsing a blank string
// gives an absent angle.
func (a Angle) IsSet() bool {
	return a.set
}

func (a Angle) Radians() float64 {
	return a.radians.get(func() float64 {
		return toRadians(a.degrees)
	})
}

// Sin, Cos and Tan are those of the reduced latitude on the WGS84
// ellipsoid, tan(β) = (1-f)·tan(φ), not of the angle itself.
func (a Angle) Sin() float64 {
	return a.reduced().sin
}

func (a Angle) Cos() float64 {
	return a.reduced().cos
}

func (a Angle) Tan() float64 {
	return a.reduced().tan
}

func (a Angle) reduced() trio {
	return a.trig.get(func() trio {
		rad := a.Radians()
		tan := (1 - F) * math.Tan(rad)
		cos := 1 / math.Sqrt(1+tan*tan)
		// keep the quadrant so headings beyond ±90° project correctly
		if math.Cos(rad) < 0 {
			cos = -cos
		}
		return trio{sin: tan * cos, cos: cos, tan: tan}
	})
}

// Operator combines two degree values.
type Operator func(x, y float64) float64

var (
	Plus  Operator = func(x, y float64) float64 { return x + y }
	Minus Operator = func(x, y float64) float64 { return x - y }
	Times Operator = func(x, y float64) float64 { return x * y }
	Over  Operator = func(x, y float64) float64 { return x / y }
)

func (a Angle) apply(op Operator, y float64) Angle {
	return NewAngle(op(a.degrees, y))
}

func (a Angle) Add(b Angle) Angle { return a.apply(Plus, b.degrees) }
func (a Angle) Sub(b Angle) Angle { return a.apply(Minus, b.degrees) }
func (a Angle) Mul(b Angle) Angle { return a.apply(Times, b.degrees) }
func (a Angle) Div(b Angle) Angle { return a.apply(Over, b.degrees) }

func (a Angle) AddDegrees(x float64) Angle { return a.apply(Plus, x) }
func (a Angle) SubDegrees(x float64) Angle { return a.apply(Minus, x) }
func (a Angle) MulDegrees(x float64) Angle { return a.apply(Times, x) }
func (a Angle) DivDegrees(x float64) Angle { return a.apply(Over, x) }

// Scalar applies op with a plain number on the left of an angle. The result
// is a number, not an angle: Scalar(55, Plus, NewAngle(5)) == 60.
func Scalar(x float64, op Operator, a Angle) float64 {
	return op(x, a.degrees)
}

// Compare orders angles by degrees.
func (a Angle) Compare(b Angle) int {
	switch {
	case a.degrees < b.degrees:
		return -1
	case a.degrees > b.degrees:
		return 1
	}
	return 0
}

func (a Angle) Less(b Angle) bool {
	return a.degrees < b.degrees
}

// Equal reports whether a and b are the same kind of angle with the same
// value.
func (a Angle) Equal(b Angle) bool {
	return a.Axis().Name == b.Axis().Name && a.set == b.set && a.degrees == b.degrees
}

// Abs returns a copy of a normalised into [0, 360).
func (a Angle) Abs() Angle {
	c := newAngle(a.axis, a.degrees, a.set)
	return c.Normalize()
}

// Normalize maps a into [0, 360) in place and returns it.
func (a *Angle) Normalize() Angle {
	a.degrees = wrap360(a.degrees)
	a.radians = newOnce[float64]()
	a.trig = newOnce[trio]()
	return *a
}

// Latitude returns the angle as a latitude.
func (a Angle) Latitude() Latitude {
	return Latitude{newAngle(&LatitudeAxis, a.degrees, a.set)}
}

// Longitude returns the angle as a longitude.
func (a Angle) Longitude() Longitude {
	return Longitude{newAngle(&LongitudeAxis, a.degrees, a.set)}
}
