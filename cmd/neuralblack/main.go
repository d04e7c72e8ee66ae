package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/toolkit-cli/neuralblack/console"
	"github.com/toolkit-cli/neuralblack/internal/cli"
	"github.com/toolkit-cli/neuralblack/internal/demo"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Progress bool `help:"Run the animated progress showcase instead of the static demo."`
	NoColor  bool `help:"Disable coloured output."`
	Version  bool `help:"Show version information."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("neuralblack"),
		kong.Description("Preview the Neural Black terminal theme."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	var opts []console.Option
	if CLI.NoColor {
		opts = append(opts, console.WithColor(false))
	}

	if CLI.Progress {
		if err := demo.RunProgress(); err != nil {
			console.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	if err := demo.Run(console.New(opts...)); err != nil {
		console.Error(err.Error())
		os.Exit(1)
	}
}
