package track

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/a-bouts/great-circle/latlon"
)

type Waypoint struct {
	Name string           `json:"name"`
	Lat  latlon.Latitude  `json:"lat"`
	Lon  latlon.Longitude `json:"lon"`
}

// UnmarshalYAML reads lat and lon in any notation latlon understands.
func (w *Waypoint) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name string `yaml:"name"`
		Lat  string `yaml:"lat"`
		Lon  string `yaml:"lon"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	lat, err := latlon.ParseLatitude(raw.Lat)
	if err != nil {
		return fmt.Errorf("waypoint %q: %w", raw.Name, err)
	}
	lon, err := latlon.ParseLongitude(raw.Lon)
	if err != nil {
		return fmt.Errorf("waypoint %q: %w", raw.Name, err)
	}
	*w = Waypoint{Name: raw.Name, Lat: lat, Lon: lon}
	return nil
}

// Track is a named sequence of waypoints.
type Track struct {
	Name      string     `json:"name" yaml:"name"`
	Waypoints []Waypoint `json:"waypoints" yaml:"waypoints"`
}

// Leg joins two consecutive waypoints.
type Leg struct {
	From           string           `json:"from"`
	To             string           `json:"to"`
	Distance       float64          `json:"distance"`
	InitialHeading latlon.Angle     `json:"initialHeading"`
	FinalHeading   latlon.Angle     `json:"finalHeading"`
	Algorithm      latlon.Algorithm `json:"algorithm"`
}

// Load reads a track from a YAML (.yaml, .yml) or JSON file.
func Load(file string) (Track, error) {
	var t Track

	content, err := os.ReadFile(file)
	if err != nil {
		log.Errorf("Error reading file '%s'", file)
		return t, err
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &t)
	default:
		err = json.Unmarshal(content, &t)
	}
	if err != nil {
		return t, fmt.Errorf("track %s: %w", file, err)
	}
	return t, nil
}

func (w Waypoint) coordinate(opts ...latlon.Option) (*latlon.Coordinate, error) {
	c := latlon.NewCoordinate(w.Lat, w.Lon, opts...)
	if !c.Valid() {
		return nil, fmt.Errorf("waypoint %q: invalid coordinate %s", w.Name, c)
	}
	return c, nil
}

// Legs solves every leg of the track on the ellipsoid. Legs for which
// Vincenty does not converge are computed on the sphere instead.
func (t Track) Legs(opts ...latlon.Option) ([]Leg, error) {
	if len(t.Waypoints) < 2 {
		return nil, nil
	}

	coordinates := make([]*latlon.Coordinate, len(t.Waypoints))
	for i, w := range t.Waypoints {
		c, err := w.coordinate(opts...)
		if err != nil {
			return nil, err
		}
		coordinates[i] = c
	}

	legs := make([]Leg, 0, len(t.Waypoints)-1)
	for i := 1; i < len(coordinates); i++ {
		from, to := coordinates[i-1], coordinates[i]
		leg := Leg{From: t.Waypoints[i-1].Name, To: t.Waypoints[i].Name, Algorithm: latlon.Ellipsoidal}

		s, err := from.SolutionTo(to)
		switch {
		case err == nil:
			leg.Distance = s.Distance
			leg.InitialHeading = s.InitialBearing
			leg.FinalHeading = s.FinalBearing
		case errors.Is(err, latlon.ErrFailedToConverge):
			log.WithFields(log.Fields{
				"track": t.Name,
				"from":  leg.From,
				"to":    leg.To,
			}).Warn("Vincenty did not converge, falling back to haversine")

			leg.Algorithm = latlon.Spherical
			leg.Distance = latlon.Haversine(from, to)
			leg.InitialHeading = latlon.HaversineBearing(from, to)
			leg.FinalHeading = latlon.HaversineBearing(to, from).AddDegrees(180).Abs()
		default:
			return nil, fmt.Errorf("leg %s -> %s: %w", leg.From, leg.To, err)
		}

		legs = append(legs, leg)
	}

	return legs, nil
}

// Total returns the length of all legs.
func Total(legs []Leg) float64 {
	total := 0.0
	for _, l := range legs {
		total += l.Distance
	}
	return total
}
