package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/a-bouts/great-circle/api/model"
	"github.com/a-bouts/great-circle/latlon"
)

func newAngleCmd(cfg *config) *cobra.Command {
	var (
		axis     string
		decimals int
	)

	cmd := &cobra.Command{
		Use:   "angle VALUE...",
		Short: "Parse angles and print them in every notation",
		Example: `gcircle angle --axis latitude "50°30'20\"N" N054.1.12.300
gcircle angle -- -10.5`,
		Args:              cobra.MinimumNArgs(1),
		DisableAutoGenTag: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runAngle(cfg, axis, decimals, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&axis, "axis", "angle", "angle, latitude or longitude")
	flags.IntVar(&decimals, "decimals", latlon.DefaultDecimals, "decimals of the decimal notation")

	return cmd
}

func parseOnAxis(axis, value string) (latlon.Angle, latlon.Markers, error) {
	switch axis {
	case latlon.LatitudeAxis.Name:
		l, err := latlon.ParseLatitude(value)
		return l.Angle, latlon.Markers{Positive: "N", Negative: "S"}, err
	case latlon.LongitudeAxis.Name:
		l, err := latlon.ParseLongitude(value)
		return l.Angle, latlon.Markers{Positive: "E", Negative: "W"}, err
	case latlon.AngleAxis.Name:
		a, err := latlon.ParseAngle(value)
		return a, latlon.Markers{}, err
	}
	return latlon.Angle{}, latlon.Markers{}, fmt.Errorf("unknown axis %q", axis)
}

func runAngle(cfg *config, axis string, decimals int, values []string) error {
	results := make([]model.AngleResult, 0, len(values))
	for _, v := range values {
		a, markers, err := parseOnAxis(axis, v)
		if err != nil {
			return err
		}
		results = append(results, model.AngleResult{
			Axis:        axis,
			Degrees:     a.Degrees(),
			Radians:     a.Radians(),
			Decimal:     a.Format(decimals, false, markers),
			Sexagesimal: a.Format(decimals, true, markers),
		})
	}

	if cfg.output == "json" {
		return printJSON(cfg.out, results)
	}

	t := newTable(cfg.out, "Input", "Degrees", "Radians", "Decimal", "Sexagesimal")
	for i, r := range results {
		t.AppendRow(table.Row{values[i], r.Degrees, r.Radians, r.Decimal, r.Sexagesimal})
	}
	t.Render()

	return nil
}
