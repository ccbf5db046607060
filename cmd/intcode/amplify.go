package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/intcode"
	"github.com/chazu/intcode/pkg/pipeline"
)

var amplifyCommand = cli.Command{
	Name:      "amplify",
	Usage:     "find the phase ordering giving the highest amplifier signal",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "phases",
			Usage: "comma-separated phase settings (default 0-4, or 5-9 with --feedback)",
		},
		cli.BoolFlag{
			Name:  "feedback, f",
			Usage: "connect the last amplifier back to the first",
		},
		cli.Int64Flag{
			Name:  "signal",
			Usage: "signal fed to the first amplifier",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Usage: "parallel workers (default from config)",
		},
	},
	Action: amplifyAction,
}

func amplifyAction(c *cli.Context) error {
	program, err := loadProgram(c)
	if err != nil {
		return err
	}
	phases, err := parseValues(c.String("phases"))
	if err != nil {
		return usageError(c, "bad --phases: %v", err)
	}
	if phases == nil {
		phases = []int64{0, 1, 2, 3, 4}
		if c.Bool("feedback") {
			phases = []int64{5, 6, 7, 8, 9}
		}
	}
	workers := c.Int("workers")
	if workers <= 0 {
		workers = cfg.Search.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := pipeline.Search(ctx, program, pipeline.SearchConfig{
		Phases:   phases,
		Feedback: c.Bool("feedback"),
		Signal:   c.Int64("signal"),
		Workers:  workers,
	})
	if err != nil {
		return err
	}

	mode := "chain"
	if c.Bool("feedback") {
		mode = "feedback"
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Mode", "Phases", "Signal"})
	table.Append([]string{mode, intcode.Format(result.Phases), strconv.FormatInt(result.Signal, 10)})
	table.Render()
	return nil
}
