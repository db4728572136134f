package latlon

// Latitude is an angle north (positive) or south (negative) of the equator.
// Its range is not enforced, see Coordinate.Valid.
type Latitude struct {
	Angle
}

// Longitude is an angle east (positive) or west (negative) of the prime
// meridian.
type Longitude struct {
	Angle
}

func NewLatitude(degrees float64) Latitude {
	return Latitude{newAngle(&LatitudeAxis, degrees, true)}
}

func LatitudeFromRadians(radians float64) Latitude {
	return NewLatitude(toDegrees(radians))
}

// ParseLatitude reads a latitude. Only N and S are accepted as compass
// points, S negating the value.
func ParseLatitude(s string) (Latitude, error) {
	a, err := parseAngle(s, &LatitudeAxis)
	return Latitude{a}, err
}

func (l Latitude) Equal(o Latitude) bool {
	return l.set == o.set && l.degrees == o.degrees
}

// String formats the latitude in degrees, minutes and seconds with its
// compass point.
func (l Latitude) String() string {
	return l.Format(0, true, Markers{Positive: "N", Negative: "S"})
}

func NewLongitude(degrees float64) Longitude {
	return Longitude{newAngle(&LongitudeAxis, degrees, true)}
}

func LongitudeFromRadians(radians float64) Longitude {
	return NewLongitude(toDegrees(radians))
}

// ParseLongitude reads a longitude. Only E and W are accepted as compass
// points, W negating the value.
func ParseLongitude(s string) (Longitude, error) {
	a, err := parseAngle(s, &LongitudeAxis)
	return Longitude{a}, err
}

func (l Longitude) Equal(o Longitude) bool {
	return l.set == o.set && l.degrees == o.degrees
}

func (l Longitude) String() string {
	return l.Format(0, true, Markers{Positive: "E", Negative: "W"})
}
