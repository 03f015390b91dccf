package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hollowcheck/hollowcheck/internal/sarif"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// render dispatches report to the requested formatter (pretty, JSON,
// or SARIF 2.1.0) and returns the bytes to write out.
func render(report *model.Report, format, version string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "pretty":
		return renderPretty(report), nil
	case "json":
		return json.MarshalIndent(report, "", "  ")
	case "sarif":
		return sarif.Marshal(report, version)
	default:
		return nil, fmt.Errorf("unknown format %q (want pretty, json, or sarif)", format)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func renderPretty(report *model.Report) []byte {
	var buf bytes.Buffer
	colored := os.Getenv("NO_COLOR") == ""

	gradeLine := fmt.Sprintf("Grade %s  Score %d  Threshold %d", report.Grade, report.Score, report.Threshold)
	verdict := "PASS"
	paint := color.GreenString
	if !report.Passed {
		verdict = "FAIL"
		paint = color.RedString
	}
	if colored {
		fmt.Fprintf(&buf, "%s — %s\n\n", paint(verdict), gradeLine)
	} else {
		fmt.Fprintf(&buf, "%s - %s\n\n", verdict, gradeLine)
	}

	if len(report.Violations) == 0 {
		buf.WriteString("No findings.\n")
		return buf.Bytes()
	}

	violations := make([]model.Finding, len(report.Violations))
	copy(violations, report.Violations)
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Severity.Weight() > violations[j].Severity.Weight()
	})

	table := tablewriter.NewTable(&buf,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{Separators: tw.Separators{BetweenColumns: tw.Off}},
		}),
	)
	table.Header([]string{"Severity", "Rule", "Location", "Message", "Points"})
	for _, f := range violations {
		loc := f.File
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		severity := string(f.Severity)
		if f.Suppressed {
			severity += " (suppressed)"
		}
		table.Append([]string{severity, string(f.Rule), loc, f.Message, fmt.Sprintf("%d", f.Points)})
	}
	table.Render()

	fmt.Fprintf(&buf, "\nFiles scanned: %d  Violations: %d\n",
		report.Summary.FilesScanned, report.Summary.ViolationsTotal)

	return buf.Bytes()
}
