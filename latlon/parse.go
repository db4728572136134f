package latlon

import (
	"regexp"
	"strconv"
	"strings"
)

// Axis describes how compass points are read for a kind of angle.
type Axis struct {
	Name     string
	Compass  string // accepted compass points, upper case
	Negative byte   // compass point that negates the value
}

var (
	AngleAxis     = Axis{Name: "angle"}
	LatitudeAxis  = Axis{Name: "latitude", Compass: "NS", Negative: 'S'}
	LongitudeAxis = Axis{Name: "longitude", Compass: "EW", Negative: 'W'}
)

var (
	// 50°30'20"N, -10.5, 20.6°, 10.5 S
	sexagesimalRegexp = regexp.MustCompile(`(?i)^\s*(?P<sign>[+-]?)\s*(?P<degrees>[0-9]{1,3})\s*` +
		`(?:°\s*(?:(?P<minutes>[0-5]?[0-9])\s*['′])?\s*(?:(?P<seconds>[0-5]?[0-9](?:\.[0-9]+)?)\s*["″])?` +
		`|(?P<decimal>\.[0-9]+)\s*°?)?` +
		`\s*(?P<compass>[NSEW]?)\s*$`)
	// N054.1.12.300
	prefixedRegexp = regexp.MustCompile(`(?i)^\s*(?P<compass>[NSEW])\s*` +
		`(?P<degrees>[0-9]{1,3})\.(?P<minutes>[0-9]{1,2})\.(?P<seconds>[0-9]{1,2})\.(?P<fraction>[0-9]+)\s*$`)
)

// sign returns the multiplier implied by a compass point.
func (a Axis) sign(compass string) (float64, error) {
	if compass == "" {
		return 1, nil
	}
	c := strings.ToUpper(compass)
	if !strings.Contains(a.Compass, c) {
		return 0, ErrCompassMismatch
	}
	if c[0] == a.Negative {
		return -1, nil
	}
	return 1, nil
}

// ParseDegrees reads s as a decimal, sexagesimal or compass prefixed angle
// and returns its value in degrees. A blank string is not an error: ok is
// false and the angle is absent.
func ParseDegrees(s string, axis Axis) (degrees float64, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, false, nil
	}

	if m := submatches(sexagesimalRegexp, s); m != nil {
		degrees, err = fromSexagesimal(m, axis)
	} else if m := submatches(prefixedRegexp, s); m != nil {
		degrees, err = fromPrefixed(m, axis)
	} else {
		err = ErrMalformedAngle
	}
	if err != nil {
		return 0, false, &ParseError{Input: s, Axis: axis.Name, Err: err}
	}
	return degrees, true, nil
}

func submatches(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	m := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if name != "" {
			m[name] = match[i]
		}
	}
	return m
}

func fromSexagesimal(m map[string]string, axis Axis) (float64, error) {
	sign, err := axis.sign(m["compass"])
	if err != nil {
		return 0, err
	}
	// a leading minus and a negative compass point each negate on their own
	if m["sign"] == "-" {
		sign = -1
	}

	degrees := atof(m["degrees"]) + atof("0"+m["decimal"])
	degrees += atof(m["minutes"]) / 60.0
	degrees += atof(m["seconds"]) / 3600.0

	return sign * degrees, nil
}

func fromPrefixed(m map[string]string, axis Axis) (float64, error) {
	sign, err := axis.sign(m["compass"])
	if err != nil {
		return 0, err
	}

	degrees := atof(m["degrees"])
	degrees += atof(m["minutes"]) / 60.0
	degrees += atof(m["seconds"]) / 3600.0
	degrees += atof("0."+m["fraction"]) / 3600.0

	return sign * degrees, nil
}

// atof parses a string already validated by the grammar; empty is zero.
func atof(s string) float64 {
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
