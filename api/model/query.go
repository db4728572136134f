package model

import (
	"github.com/a-bouts/great-circle/latlon"
	"github.com/a-bouts/great-circle/track"
)

type Point struct {
	Lat latlon.Latitude  `json:"lat"`
	Lon latlon.Longitude `json:"lon"`
}

type Distance struct {
	From      Point            `json:"from"`
	To        Point            `json:"to"`
	Algorithm latlon.Algorithm `json:"algorithm"`
}

type DistanceResult struct {
	Distance       float64          `json:"distance"`
	Unit           string           `json:"unit"`
	InitialHeading latlon.Angle     `json:"initialHeading"`
	FinalHeading   latlon.Angle     `json:"finalHeading"`
	Algorithm      latlon.Algorithm `json:"algorithm"`
}

type Position struct {
	From     Point        `json:"from"`
	Heading  latlon.Angle `json:"heading"`
	Distance float64      `json:"distance"`
}

type PositionResult struct {
	Point
	Formatted string `json:"formatted"`
}

type LegsResult struct {
	Name  string      `json:"name"`
	Legs  []track.Leg `json:"legs"`
	Total float64     `json:"total"`
	Unit  string      `json:"unit"`
}

type AngleResult struct {
	Axis        string  `json:"axis"`
	Degrees     float64 `json:"degrees"`
	Radians     float64 `json:"radians"`
	Decimal     string  `json:"decimal"`
	Sexagesimal string  `json:"sexagesimal"`
}

type Error struct {
	Error string `json:"error"`
}
