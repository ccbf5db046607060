package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/intcode"
)

var (
	inputFlag = cli.Int64SliceFlag{
		Name:  "input, i",
		Usage: "queue an input value (repeatable)",
	}
	patchFlag = cli.StringSliceFlag{
		Name:  "patch, p",
		Usage: "overwrite memory before running, as addr=value (repeatable)",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "log every instruction (needs -v)",
	}
)

// Patch is a single memory overwrite applied before a run.
type Patch struct {
	Addr  int64
	Value int64
}

// parsePatch parses "addr=value".
func parsePatch(s string) (Patch, error) {
	addr, value, ok := strings.Cut(s, "=")
	if !ok {
		return Patch{}, fmt.Errorf("patch %q: expected addr=value", s)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(addr), 10, 64)
	if err != nil {
		return Patch{}, fmt.Errorf("patch %q: bad address: %w", s, err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return Patch{}, fmt.Errorf("patch %q: bad value: %w", s, err)
	}
	return Patch{Addr: a, Value: v}, nil
}

// loadProgram reads the program named by the command's first argument.
func loadProgram(c *cli.Context) ([]int64, error) {
	if !c.Args().Present() {
		return nil, usageError(c, "missing program file")
	}
	return intcode.Load(c.Args().First())
}

// newMachine builds a machine from the command's program, input, patch
// and trace flags.
func newMachine(c *cli.Context) (*intcode.Machine, error) {
	program, err := loadProgram(c)
	if err != nil {
		return nil, err
	}
	m := intcode.New(program, c.Int64Slice("input")...)
	m.Trace = cfg.Machine.Trace || c.Bool("trace")

	for _, s := range c.StringSlice("patch") {
		p, err := parsePatch(s)
		if err != nil {
			return nil, err
		}
		if err := m.Write(p.Addr, p.Value); err != nil {
			return nil, err
		}
		log.Debugf("patched mem[%d] = %d", p.Addr, p.Value)
	}
	return m, nil
}

// parseValues parses a comma-separated list of integers.
func parseValues(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return intcode.Parse(s)
}
