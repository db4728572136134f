package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/a-bouts/great-circle/api/model"
	"github.com/a-bouts/great-circle/track"
)

func newLegsCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "legs FILE",
		Short:             "Legs of a track read from a YAML or JSON file",
		Example:           `gcircle legs fastnet.yaml`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runLegs(cfg, args[0])
		},
	}

	return cmd
}

func runLegs(cfg *config, file string) error {
	t, err := track.Load(file)
	if err != nil {
		return err
	}

	legs, err := t.Legs()
	if err != nil {
		return err
	}
	log.Debugf("Track '%s' : %d legs", t.Name, len(legs))

	if legs == nil {
		legs = []track.Leg{}
	}
	total := track.Total(legs)

	if cfg.output == "json" {
		return printJSON(cfg.out, model.LegsResult{Name: t.Name, Legs: legs, Total: total, Unit: "nm"})
	}

	tw := newTable(cfg.out, "From", "To", "Distance", "Initial heading", "Final heading", "Algorithm")
	if t.Name != "" {
		tw.SetTitle(t.Name)
	}
	for _, l := range legs {
		tw.AppendRow(table.Row{l.From, l.To, nm(l.Distance), heading(l.InitialHeading), heading(l.FinalHeading), l.Algorithm.String()})
	}
	tw.AppendFooter(table.Row{"", "Total", nm(total)})
	tw.Render()

	return nil
}
