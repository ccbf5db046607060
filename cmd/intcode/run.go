package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/ascii"
	"github.com/chazu/intcode/pkg/intcode"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "run a program to completion and print its output",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		inputFlag,
		patchFlag,
		traceFlag,
		cli.Int64SliceFlag{
			Name:  "show",
			Usage: "print the final value at a memory address (repeatable)",
		},
		cli.BoolFlag{
			Name:  "ascii",
			Usage: "decode output as ASCII text",
		},
		cli.BoolFlag{
			Name:  "summary",
			Usage: "print a table describing the final machine state",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "write a snapshot of the final state to `FILE`",
		},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	m, err := newMachine(c)
	if err != nil {
		return err
	}

	runErr := m.Run()
	if runErr != nil && c.GlobalBool("verbose") {
		fmt.Fprintln(os.Stderr, m.Dump())
	}

	if path := c.String("save"); path != "" {
		if err := intcode.SaveSnapshot(path, m.Snapshot()); err != nil {
			return err
		}
		log.Infof("saved snapshot to %s", path)
	}

	printOutput(os.Stdout, m.Output(), c.Bool("ascii"))

	for _, addr := range c.Int64Slice("show") {
		v, err := m.Read(addr)
		if err != nil {
			return err
		}
		fmt.Printf("mem[%d] = %d\n", addr, v)
	}

	if c.Bool("summary") {
		printSummary(os.Stdout, m)
	}
	return runErr
}

// printOutput writes output values, either comma-separated or as text
// followed by any non-ASCII values.
func printOutput(w io.Writer, output []int64, asText bool) {
	if !asText {
		if len(output) > 0 {
			fmt.Fprintln(w, intcode.Format(output))
		}
		return
	}
	text, values := ascii.Decode(output)
	printReply(w, ascii.Reply{Text: text, Values: values})
}

func printSummary(w io.Writer, m *intcode.Machine) {
	s := m.State()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Halted", strconv.FormatBool(m.Halted())})
	table.Append([]string{"Instruction pointer", strconv.Itoa(s.IP)})
	table.Append([]string{"Relative base", strconv.FormatInt(s.RelativeBase, 10)})
	table.Append([]string{"Memory words", strconv.Itoa(s.MemorySize)})
	table.Append([]string{"Input consumed", fmt.Sprintf("%d/%d", s.InputCursor, s.InputLen)})
	table.Append([]string{"Output values", strconv.Itoa(s.OutputLen)})
	table.Append([]string{"Steps", strconv.FormatUint(s.Steps, 10)})
	table.Render()
}
