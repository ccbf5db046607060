package main

import (
	"fmt"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/pipeline"
)

var probeCommand = cli.Command{
	Name:      "probe",
	Usage:     "run a fresh copy of the program on the given input and print its first output",
	ArgsUsage: "<program>",
	Flags:     []cli.Flag{inputFlag},
	Action: func(c *cli.Context) error {
		p, err := newProbe(c)
		if err != nil {
			return err
		}
		v, ok, err := p.Query(c.Int64Slice("input")...)
		if err != nil {
			return err
		}
		if !ok {
			return cli.NewExitError("program halted without output", 1)
		}
		fmt.Println(v)
		return nil
	},
}

var scanCommand = cli.Command{
	Name:      "scan",
	Usage:     "probe every (x, y) point of a grid and draw the results",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "width",
			Value: 50,
			Usage: "grid width",
		},
		cli.Int64Flag{
			Name:  "height",
			Value: 50,
			Usage: "grid height",
		},
	},
	Action: scanAction,
}

func newProbe(c *cli.Context) (*pipeline.Probe, error) {
	program, err := loadProgram(c)
	if err != nil {
		return nil, err
	}
	return pipeline.NewProbe(program, cfg.Probe.CacheSize)
}

func scanAction(c *cli.Context) error {
	width, height := c.Int64("width"), c.Int64("height")
	if width <= 0 || height <= 0 {
		return usageError(c, "width and height must be positive")
	}
	p, err := newProbe(c)
	if err != nil {
		return err
	}
	grid, err := p.Scan(width, height)
	if err != nil {
		return err
	}
	fmt.Print(renderGrid(grid))

	count, err := p.Count(width, height)
	if err != nil {
		return err
	}
	queries, hits := p.Stats()
	log.Infof("%d queries, %d cache hits", queries, hits)
	fmt.Printf("%d points affected\n", count)
	return nil
}

// renderGrid draws nonzero cells as '#' and zero cells as '.'.
func renderGrid(grid [][]int64) string {
	var b strings.Builder
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
