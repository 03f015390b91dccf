// Command hollowcheck is a static-analysis quality gate: it checks a
// source tree against a declarative contract and reports how much of
// it looks hollow — stubbed, placeholder, or missing outright.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused
	date    = "unknown" //nolint:unused
)

func main() {
	app := &cli.App{
		Name:    "hollowcheck",
		Usage:   "Static-analysis quality gate for detecting hollow source trees",
		Version: version,
		Description: `hollowcheck validates a source tree against a contract of required
files, symbols, tests, and forbidden patterns, then flags stub functions,
placeholder data, hollow TODOs, god objects, and hallucinated imports.

Supports: Go, Rust, Python, TypeScript, JavaScript, Java, C, C++, Ruby, PHP, Scala, Swift`,
		Commands: []*cli.Command{
			analyzeCommand(),
			initCommand(),
		},
		Action: analyzeAction, // running with no subcommand analyzes "."
		Flags:  analyzeFlags(),
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(exitCodeFor(err))
	}
}
