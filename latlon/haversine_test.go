package latlon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umahmood/haversine"
)

const kilometresPerNauticalMile = 1.852

func TestHaversineAgainstReference(t *testing.T) {
	pairs := [][4]float64{
		{50, -5, 58, -3},
		{51.45, 1.15, 45.04, 7.42},
		{10, 10, 50, 50},
	}
	for _, p := range pairs {
		d := Haversine(At(p[0], p[1]), At(p[2], p[3]))
		_, km := haversine.Distance(haversine.Coord{Lat: p[0], Lon: p[1]}, haversine.Coord{Lat: p[2], Lon: p[3]})
		// both use a mean radius, theirs of 6371 km
		assert.InDelta(t, km/kilometresPerNauticalMile, d, d*1e-4, "%v", p)
	}
}

func TestHaversineWithinOnePercent(t *testing.T) {
	pairs := []struct {
		from, to *Coordinate
	}{
		{At(50, -5), At(58, -3)},
		{At(50, -5), At(-58, 3)},
		{At(10, 10), At(50, 50)},
	}
	for _, p := range pairs {
		e, err := p.from.DistanceTo(p.to)
		assert.NoError(t, err)
		s, err := p.from.DistanceBy(p.to, Spherical)
		assert.NoError(t, err)
		assert.InDelta(t, e, s, e*0.01, "%s -> %s", p.from, p.to)
	}
}

func TestHaversineZero(t *testing.T) {
	assert.Zero(t, Haversine(At(50, -5), At(50, -5)))
}

func TestHaversineBearing(t *testing.T) {
	b := HaversineBearing(At(-5, -5), At(5, 5))
	assert.InDelta(t, 45.0, b.Degrees(), 0.5)

	b = HaversineBearing(At(5, 5), At(-5, -5))
	assert.InDelta(t, 225.0, b.Degrees(), 0.5)

	b = HaversineBearing(At(0, 0), At(10, 0))
	assert.InDelta(t, 0.0, b.Degrees(), 1e-9)
}

func TestHaversineDoverCalais(t *testing.T) {
	dover, calais := At(51.127, 1.338), At(50.964, 1.853)

	assert.Equal(t, 21.765, math.Round(Haversine(dover, calais)*1000)/1000)
	assert.Equal(t, 116.5, math.Round(HaversineBearing(dover, calais).Degrees()*10)/10)
}
