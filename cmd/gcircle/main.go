package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/a-bouts/great-circle/latlon"
)

type config struct {
	out       io.Writer
	output    string
	algorithm string
	debug     bool
}

func (c *config) solverAlgorithm() (latlon.Algorithm, error) {
	return latlon.ParseAlgorithm(c.algorithm)
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := &config{out: out}

	cmd := &cobra.Command{
		Use:   "gcircle",
		Short: "gcircle computes distances and headings on the WGS84 ellipsoid",
		Long: `gcircle computes distances and headings on the WGS84 ellipsoid.

Angles are accepted as decimal degrees (-10.5, 20.6°), sexagesimal
(50°30'20"N, 10° 30' W) or compass prefixed (N054.1.12.300).
Negative decimal values must follow "--" so they are not read as flags.
Distances are in nautical miles.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfg.debug {
				log.SetLevel(log.DebugLevel)
			}
			switch cfg.output {
			case "human", "json":
				return nil
			}
			return fmt.Errorf("unknown output %q, expected human or json", cfg.output)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfg.output, "output", "o", "human", "output format: human or json")
	flags.StringVarP(&cfg.algorithm, "algorithm", "a", "ellipsoidal", "ellipsoidal (vincenty) or spherical (haversine)")
	flags.BoolVar(&cfg.debug, "debug", false, "log at debug level")

	cmd.AddCommand(newDistanceCmd(cfg))
	cmd.AddCommand(newPositionCmd(cfg))
	cmd.AddCommand(newAngleCmd(cfg))
	cmd.AddCommand(newLegsCmd(cfg))

	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
