// intcode CLI - run, inspect and drive Intcode programs
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/internal/config"
)

var (
	log = commonlog.GetLogger("intcode.cli")
	cfg = config.Default()
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "intcode"
	app.Usage = "run, inspect and drive Intcode programs"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "configuration file (default: nearest " + config.FileName + ")",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "verbose logging",
		},
	}
	app.Before = setup
	app.Commands = []cli.Command{
		runCommand,
		disasmCommand,
		amplifyCommand,
		probeCommand,
		scanCommand,
		asciiCommand,
		inspectCommand,
	}
	return app
}

// setup loads configuration and configures logging before any command runs.
func setup(c *cli.Context) error {
	var err error
	var loaded *config.Config
	if path := c.GlobalString("config"); path != "" {
		loaded, err = config.LoadFile(path)
	} else {
		loaded, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if loaded != nil {
		cfg = loaded
	}

	verbosity := cfg.Log.Verbosity
	if c.GlobalBool("verbose") && verbosity < 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, cfg.LogPath())
	if cfg.Path != "" {
		log.Debugf("loaded %s", cfg.Path)
	}
	return nil
}

func usageError(c *cli.Context, format string, args ...interface{}) error {
	return cli.NewExitError(fmt.Sprintf("%s: %s", c.Command.Name, fmt.Sprintf(format, args...)), 2)
}
