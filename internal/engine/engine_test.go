package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/contract"
)

func TestAnalyze_EndToEnd(t *testing.T) {
	root := t.TempDir()
	src := "package main\n\nfunc HandleRequest() error {\n\tpanic(\"not implemented\")\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte(src), 0o644))

	c, err := contract.LoadBytes([]byte(`
required_files:
  - path: main.go
    required: true
  - path: README.md
    required: true
required_symbols:
  - name: HandleRequest
    kind: function
    file: main.go
`), "inline")
	require.NoError(t, err)

	report, err := Analyze(context.Background(), root, c, Options{SkipRegistryCheck: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.FilesScanned)

	foundStub := false
	foundMissingFile := false
	for _, f := range report.Violations {
		if f.File == "main.go" && string(f.Rule) == "stub_function" {
			foundStub = true
		}
		if f.File == "README.md" && string(f.Rule) == "missing_file" {
			foundMissingFile = true
		}
	}
	assert.True(t, foundStub, "expected a stub_function finding on main.go, got %+v", report.Violations)
	assert.True(t, foundMissingFile, "expected a missing_file finding for README.md, got %+v", report.Violations)
	assert.Greater(t, report.Score, 0, "expected nonzero score")
}

func TestAnalyze_ThresholdOverride(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))

	c, err := contract.LoadBytes([]byte("{}\n"), "inline")
	require.NoError(t, err)

	override := 0
	report, err := Analyze(context.Background(), root, c, Options{SkipRegistryCheck: true, ThresholdOverride: &override})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Threshold, "override should force threshold to 0")
}
