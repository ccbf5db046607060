package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/ascii"
)

var asciiCommand = cli.Command{
	Name:      "ascii",
	Usage:     "talk to a program over its ASCII interface",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		patchFlag,
		traceFlag,
		cli.StringFlag{
			Name:  "script, s",
			Usage: "send the lines of `FILE` before going interactive",
		},
		cli.StringFlag{
			Name:  "springscript",
			Usage: "validate the springscript program in `FILE` and send it",
		},
		cli.BoolFlag{
			Name:  "batch",
			Usage: "exit after the script instead of prompting",
		},
	},
	Action: asciiAction,
}

var valueColor = color.New(color.FgGreen)

func asciiAction(c *cli.Context) error {
	m, err := newMachine(c)
	if err != nil {
		return err
	}
	session := ascii.NewSession(m)
	reply, err := session.Start()
	if err != nil {
		return err
	}
	printReply(os.Stdout, reply)

	if path := c.String("springscript"); path != "" && !reply.Halted {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		prog, err := ascii.ParseProgram(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Infof("sending %d springscript instructions (%s)", len(prog.Instructions), prog.Finish)
		if reply, err = session.Send(prog.Lines()...); err != nil {
			return err
		}
		printReply(os.Stdout, reply)
	}

	if path := c.String("script"); path != "" && !reply.Halted {
		lines, err := readScript(path)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
			if reply, err = session.Send(line); err != nil {
				return err
			}
			printReply(os.Stdout, reply)
			if reply.Halted {
				break
			}
		}
	}
	if reply.Halted || c.Bool("batch") {
		return nil
	}
	return interact(session)
}

// interact reads lines from the terminal until the machine halts or the
// user aborts.
func interact(session *ascii.Session) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		reply, err := session.Send(input)
		if err != nil {
			return err
		}
		printReply(os.Stdout, reply)
		if reply.Halted {
			return nil
		}
	}
}

func printReply(w io.Writer, r ascii.Reply) {
	fmt.Fprint(w, r.Text)
	for _, v := range r.Values {
		valueColor.Fprintf(w, "%d\n", v)
	}
}

// readScript returns the lines of a script file, skipping blank lines and
// lines starting with '#'.
func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, text)
	}
	return lines, scanner.Err()
}
