package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/a-bouts/great-circle/api/model"
	"github.com/a-bouts/great-circle/latlon"
)

func newPositionCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "position LAT LON HEADING DISTANCE",
		Short:             "Coordinate reached following a heading for a distance in nautical miles",
		Example:           `gcircle position 50N 5W 90 60`,
		Args:              cobra.ExactArgs(4),
		DisableAutoGenTag: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runPosition(cfg, args)
		},
	}

	return cmd
}

func runPosition(cfg *config, args []string) error {
	from, err := latlon.ParseCoordinate(args[0], args[1])
	if err != nil {
		return err
	}
	if !from.Valid() {
		return fmt.Errorf("invalid coordinate %s", from)
	}
	h, err := latlon.ParseAngle(args[2])
	if err != nil {
		return fmt.Errorf("heading: %w", err)
	}
	if !h.IsSet() {
		return fmt.Errorf("heading is required")
	}
	distance, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("distance: %w", err)
	}

	to := from.NewPosition(h, distance)

	if cfg.output == "json" {
		return printJSON(cfg.out, model.PositionResult{
			Point:     model.Point{Lat: to.Latitude(), Lon: to.Longitude()},
			Formatted: to.String(),
		})
	}

	t := newTable(cfg.out, "From", "Heading", "Distance", "To", "Latitude", "Longitude")
	t.AppendRow(table.Row{from.String(), heading(h), nm(distance), to.String(), to.Latitude().Degrees(), to.Longitude().Degrees()})
	t.Render()

	return nil
}
