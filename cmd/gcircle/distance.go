package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/a-bouts/great-circle/api/model"
	"github.com/a-bouts/great-circle/latlon"
)

func newDistanceCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "distance LAT1 LON1 LAT2 LON2",
		Short:             "Distance and headings between two coordinates",
		Example:           `gcircle distance 50N 5W "58°0'0\"N" 3W`,
		Args:              cobra.ExactArgs(4),
		DisableAutoGenTag: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runDistance(cfg, args)
		},
	}

	return cmd
}

func runDistance(cfg *config, args []string) error {
	algorithm, err := cfg.solverAlgorithm()
	if err != nil {
		return err
	}
	from, err := latlon.ParseCoordinate(args[0], args[1])
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := latlon.ParseCoordinate(args[2], args[3])
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("invalid coordinates %s -> %s", from, to)
	}

	res := model.DistanceResult{Unit: "nm", Algorithm: algorithm}
	switch algorithm {
	case latlon.Spherical:
		res.Distance = latlon.Haversine(from, to)
		res.InitialHeading = latlon.HaversineBearing(from, to)
		res.FinalHeading = latlon.HaversineBearing(to, from).AddDegrees(180).Abs()
	default:
		s, err := from.SolutionTo(to)
		if err != nil {
			return fmt.Errorf("%s -> %s: %w", from, to, err)
		}
		res.Distance = s.Distance
		res.InitialHeading = s.InitialBearing
		res.FinalHeading = s.FinalBearing
	}

	if cfg.output == "json" {
		return printJSON(cfg.out, res)
	}

	t := newTable(cfg.out, "From", "To", "Distance", "Initial heading", "Final heading", "Algorithm")
	t.AppendRow(table.Row{from.String(), to.String(), nm(res.Distance), heading(res.InitialHeading), heading(res.FinalHeading), res.Algorithm.String()})
	t.Render()

	return nil
}
