package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/hollowcheck/hollowcheck/internal/herrors"
)

const templateContract = `# hollowcheck contract
# See the project README for the full schema.

required_files: []
required_symbols: []
forbidden_patterns: []
complexity_requirements: []
required_tests: []

mock_signatures:
  patterns: []
  skip_test_files: true

god_objects:
  enabled: true
  max_file_lines: 1000
  max_function_lines: 150
  max_function_complexity: 25
  max_functions_per_file: 50
  max_class_methods: 40

hollow_todos:
  enabled: true

dependencies:
  enabled_registries: [pypi, npm, crates, goproxy]
  allowlist: []
  cache_ttl_hours: 24
  fail_on_timeout: false
  probe_timeout_seconds: 10
  max_in_flight: 8

excluded_paths: []
include_test_files: true
threshold: 25
`

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Generate a starter contract file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   defaultContractPath,
				Usage:   "Path to write the contract template",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing contract file",
			},
		},
		Action: runInit,
	}
}

func runInit(c *cli.Context) error {
	path := c.String("output")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return herrors.Input("cmd.init", path, fmt.Errorf("contract already exists (use --force to overwrite)"))
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return herrors.Internal("cmd.init", err)
		}
	}
	if err := os.WriteFile(path, []byte(templateContract), 0o644); err != nil {
		return herrors.Internal("cmd.init", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote contract template to %s\n", path)
	return nil
}
