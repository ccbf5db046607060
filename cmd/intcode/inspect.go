package main

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/intcode"
)

var inspectCommand = cli.Command{
	Name:      "inspect",
	Usage:     "describe a saved snapshot, optionally resuming it",
	ArgsUsage: "<snapshot>",
	Flags: []cli.Flag{
		inputFlag,
		cli.BoolFlag{
			Name:  "full",
			Usage: "print every field of the snapshot",
		},
		cli.BoolFlag{
			Name:  "resume, r",
			Usage: "restore the machine and run it with the given input",
		},
		cli.BoolFlag{
			Name:  "ascii",
			Usage: "decode resumed output as ASCII text",
		},
	},
	Action: inspectAction,
}

func inspectAction(c *cli.Context) error {
	if !c.Args().Present() {
		return usageError(c, "missing snapshot file")
	}
	snap, err := intcode.LoadSnapshot(c.Args().First())
	if err != nil {
		return err
	}
	m, err := intcode.Restore(snap)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot %s\n", snap.ID)
	if c.Bool("full") {
		fmt.Println(pretty.Sprint(snap))
	} else {
		printSummary(os.Stdout, m)
	}
	if !c.Bool("resume") {
		return nil
	}

	before := len(m.Output())
	m.Push(c.Int64Slice("input")...)
	runErr := m.Run()
	printOutput(os.Stdout, m.Output()[before:], c.Bool("ascii"))
	if runErr != nil && c.GlobalBool("verbose") {
		fmt.Fprintln(os.Stderr, m.Dump())
	}
	return runErr
}
