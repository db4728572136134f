package latlon

import (
	"fmt"
	"math"
	"strconv"
)

// Markers adorn a formatted angle according to its sign.
//
// For a positive angle an empty marker adds nothing, "+" is prepended and
// anything else is appended. For a negative angle an empty marker or "-" is
// prepended, anything else is appended to the magnitude.
type Markers struct {
	Positive string
	Negative string
}

// DefaultDecimals is the precision used by String.
const DefaultDecimals = 6

// Format renders the angle either as a decimal number of degrees with the
// given decimals, or as D°M'S" when sexagesimal is set.
func (a Angle) Format(decimals int, sexagesimal bool, sign Markers) string {
	if !a.set {
		return ""
	}

	var magnitude string
	if sexagesimal {
		magnitude = fmt.Sprintf("%d°%d'%d\"", int(math.Abs(a.degrees)), a.Minutes(), a.Seconds())
	} else {
		magnitude = strconv.FormatFloat(math.Abs(a.degrees), 'f', decimals, 64)
	}

	if a.degrees < 0 {
		switch sign.Negative {
		case "", "-":
			return "-" + magnitude
		default:
			return magnitude + sign.Negative
		}
	}

	switch sign.Positive {
	case "":
		return magnitude
	case "+":
		return "+" + magnitude
	default:
		return magnitude + sign.Positive
	}
}

func (a Angle) String() string {
	return a.Format(DefaultDecimals, false, Markers{})
}

// Minutes returns the whole minutes of the sexagesimal form.
func (a Angle) Minutes() int {
	return int(math.Floor(math.Abs(a.degrees)*60)) % 60
}

// Seconds returns the whole seconds of the sexagesimal form.
func (a Angle) Seconds() int {
	return int(math.Floor(math.Abs(a.degrees)*3600)) % 60
}
