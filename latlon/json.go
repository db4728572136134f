package latlon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON writes the angle as a number of degrees, or null when absent.
func (a Angle) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(a.degrees, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a number of degrees or a string in any notation
// ParseAngle understands.
func (a *Angle) UnmarshalJSON(data []byte) error {
	v, err := unmarshalAngle(data, &AngleAxis)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (l *Latitude) UnmarshalJSON(data []byte) error {
	v, err := unmarshalAngle(data, &LatitudeAxis)
	if err != nil {
		return err
	}
	*l = Latitude{v}
	return nil
}

func (l *Longitude) UnmarshalJSON(data []byte) error {
	v, err := unmarshalAngle(data, &LongitudeAxis)
	if err != nil {
		return err
	}
	*l = Longitude{v}
	return nil
}

func unmarshalAngle(data []byte, axis *Axis) (Angle, error) {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return newAngle(axis, 0, false), nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Angle{}, err
		}
		return parseAngle(s, axis)
	}

	var degrees float64
	if err := json.Unmarshal(data, &degrees); err != nil {
		return Angle{}, &ParseError{Input: string(data), Axis: axis.Name, Err: fmt.Errorf("%w: %v", ErrMalformedAngle, err)}
	}
	return newAngle(axis, degrees, true), nil
}
