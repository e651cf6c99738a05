package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	configKey = "config"
	tableKey  = "render"
)

func main() {
	scenarioFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  configKey,
			Usage: "Scenario file (.toml, .yaml or .yml)",
		},
		&cli.BoolFlag{
			Name:  tableKey,
			Usage: "Render the results table",
			Value: true,
		},
	}

	cmd := &cli.Command{
		Name:  "slotbench",
		Usage: "Measure broadcast latency and dispatch overhead of package slots",
		Commands: []*cli.Command{
			{
				Name:   "latency",
				Usage:  "Per-call broadcast latency percentiles for each slot count",
				Flags:  scenarioFlags,
				Action: latency,
			},
			{
				Name:   "overhead",
				Usage:  "Dispatch throughput and connect/disconnect cost for each slot count",
				Flags:  scenarioFlags,
				Action: overhead,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
