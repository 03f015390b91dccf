package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hollowcheck/hollowcheck/internal/engine"
	"github.com/hollowcheck/hollowcheck/internal/herrors"
	"github.com/hollowcheck/hollowcheck/pkg/contract"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

const defaultContractPath = "hollowcheck.yaml"

func analyzeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "contract",
			Aliases: []string{"c"},
			Usage:   "Path to the contract file (YAML, TOML, or JSON)",
			EnvVars: []string{"HOLLOWCHECK_CONTRACT"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "pretty",
			Usage:   "Output format: pretty, json, sarif",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Write report to file instead of stdout",
		},
		&cli.IntFlag{
			Name:    "threshold",
			Usage:   "Override the contract's score threshold",
			EnvVars: []string{"HOLLOWCHECK_THRESHOLD"},
		},
		&cli.BoolFlag{
			Name:  "skip-registry-check",
			Usage: "Skip the Dependency Verifier's network probes",
		},
		&cli.BoolFlag{
			Name:  "show-suppressed",
			Usage: "Retain suppressed findings in the report, flagged as suppressed",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Halve god-object thresholds for this run",
		},
		&cli.BoolFlag{
			Name:  "relaxed",
			Usage: "Double god-object thresholds for this run",
		},
		&cli.BoolFlag{
			Name:  "no-gitignore",
			Usage: "Do not honor .gitignore while walking the tree",
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"check"},
		Usage:     "Analyze a source tree against a contract",
		ArgsUsage: "[path]",
		Flags:     analyzeFlags(),
		Action:    analyzeAction,
	}
}

func analyzeAction(c *cli.Context) error {
	root := "."
	if c.Args().Len() > 0 {
		root = c.Args().First()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return herrors.Input("cmd.analyze", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("not a directory")
		}
		return herrors.Input("cmd.analyze", absRoot, err)
	}

	cnt, err := loadContract(c)
	if err != nil {
		return err
	}
	applyProfile(c, cnt)

	opts := engine.Options{
		SkipRegistryCheck: c.Bool("skip-registry-check"),
		ShowSuppressed:    c.Bool("show-suppressed"),
		HonorGitignore:    !c.Bool("no-gitignore"),
	}
	if c.IsSet("threshold") {
		t := c.Int("threshold")
		opts.ThresholdOverride = &t
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := engine.Analyze(ctx, absRoot, cnt, opts)
	if err != nil {
		return err
	}

	out, err := render(report, c.String("format"), version)
	if err != nil {
		return herrors.Internal("cmd.analyze", err)
	}
	if err := writeOutput(c.String("output"), out); err != nil {
		return herrors.Internal("cmd.analyze", err)
	}

	if !report.Passed {
		os.Exit(1)
	}
	return nil
}

// loadContract resolves the contract path from --contract,
// HOLLOWCHECK_CONTRACT (handled by the flag's EnvVars), or the
// default path, falling back to an empty contract — every field
// optional — when no contract file exists at all.
func loadContract(c *cli.Context) (*model.Contract, error) {
	path := c.String("contract")
	if path == "" {
		path = defaultContractPath
	}
	if _, err := os.Stat(path); err != nil {
		if !c.IsSet("contract") {
			return contract.LoadBytes([]byte("{}\n"), "default")
		}
		return nil, herrors.Input("cmd.loadContract", path, err)
	}
	return contract.Load(path)
}

// applyProfile implements the --strict/--relaxed multiplier switches:
// strict halves god-object thresholds, relaxed doubles them. The two
// flags are mutually exclusive; relaxed wins if both are somehow set,
// since it's the more permissive direction.
func applyProfile(c *cli.Context, cnt *model.Contract) {
	switch {
	case c.Bool("relaxed"):
		scaleGodObjects(cnt, 2)
	case c.Bool("strict"):
		scaleGodObjects(cnt, 0.5)
	}
}

func scaleGodObjects(cnt *model.Contract, factor float64) {
	g := &cnt.GodObjects
	g.MaxFileLines = scale(g.MaxFileLines, factor)
	g.MaxFunctionLines = scale(g.MaxFunctionLines, factor)
	g.MaxFunctionComplexity = scale(g.MaxFunctionComplexity, factor)
	g.MaxFunctionsPerFile = scale(g.MaxFunctionsPerFile, factor)
	g.MaxClassMethods = scale(g.MaxClassMethods, factor)
}

func scale(v int, factor float64) int {
	scaled := int(float64(v) * factor)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func exitCodeFor(err error) int {
	return herrors.ExitCode(err)
}
