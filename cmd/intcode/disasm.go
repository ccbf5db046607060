package main

import (
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/intcode"
)

var disasmCommand = cli.Command{
	Name:      "disasm",
	Usage:     "print a program as assembly",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		patchFlag,
		cli.BoolFlag{
			Name:  "count",
			Usage: "print only the number of decodable instructions",
		},
	},
	Action: func(c *cli.Context) error {
		m, err := newMachine(c)
		if err != nil {
			return err
		}
		program := m.Memory()
		if c.Bool("count") {
			fmt.Println(intcode.InstructionCount(program))
			return nil
		}
		fmt.Print(intcode.Disassemble(program))
		return nil
	},
}
