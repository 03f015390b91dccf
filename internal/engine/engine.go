// Package engine ties together the Language Registry, Fact Store,
// Rule Evaluator, Dependency Verifier, Suppression Engine, and Scoring
// Pipeline into the single Analyze entry point the CLI drives.
package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/hollowcheck/hollowcheck/internal/depverify"
	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/internal/herrors"
	"github.com/hollowcheck/hollowcheck/internal/rules"
	"github.com/hollowcheck/hollowcheck/internal/score"
	"github.com/hollowcheck/hollowcheck/internal/suppress"
	"github.com/hollowcheck/hollowcheck/internal/walker"
	"github.com/hollowcheck/hollowcheck/pkg/langs"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Options configures one analysis run; every field has a
// contract-independent, CLI-supplied default.
type Options struct {
	SkipRegistryCheck bool
	ShowSuppressed    bool
	ThresholdOverride *int
	HonorGitignore    bool
	CacheDir          string
}

// Analyze walks root, parses every file the registry recognizes,
// evaluates the nine rule detectors and the dependency verifier
// concurrently, applies suppressions, and scores the result.
func Analyze(ctx context.Context, root string, c *model.Contract, opts Options) (*model.Report, error) {
	registry := langs.NewRegistry()
	w := walker.New(registry, c.ExcludedPaths, opts.HonorGitignore)

	parseable, allPaths, err := w.Walk(root)
	if err != nil {
		return nil, herrors.Internal("engine.Analyze", err)
	}
	if !c.IncludeTestFiles {
		parseable = filterTestFiles(parseable)
	}

	parsedFiles, parseWarnings := parseAll(ctx, registry, root, parseable)

	store := facts.New(parsedFiles, allPaths)

	threshold := c.Threshold
	if opts.ThresholdOverride != nil {
		threshold = *opts.ThresholdOverride
	}

	var findings []model.Finding
	var depFindings []model.Finding

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		findings = rules.Evaluate(store, c)
		return nil
	})
	if !opts.SkipRegistryCheck {
		p.Go(func(ctx context.Context) error {
			cacheDir := opts.CacheDir
			if cacheDir == "" {
				cacheDir = defaultCacheDir()
			}
			v, err := depverify.New(cacheDir, c.Dependencies)
			if err != nil {
				return nil // cache unavailable degrades to no dependency findings, not a hard failure
			}
			depFindings = v.Verify(ctx, store)
			return nil
		})
	}
	_ = p.Wait()

	findings = append(findings, depFindings...)
	findings = append(findings, store.ParseWarnings()...)
	findings = append(findings, parseWarnings...)
	rules.SortFindings(findings)

	suppressor := suppress.New()
	for _, pf := range parsedFiles {
		suppressor.Scan(pf)
	}
	findings = suppressor.Apply(findings, opts.ShowSuppressed)

	return score.Compute(findings, threshold, len(parsedFiles)), nil
}

// parseAll reads and parses every candidate file across a bounded CPU
// pool sized to the logical core count. A file that fails to parse
// contributes a parse_warning finding instead of aborting the run.
func parseAll(ctx context.Context, registry *langs.Registry, root string, relPaths []string) ([]*model.ParsedFile, []model.Finding) {
	type result struct {
		pf      *model.ParsedFile
		warning *model.Finding
	}
	results := make([]result, len(relPaths))

	p := pool.New().WithMaxGoroutines(runtime.NumCPU()).WithContext(ctx)
	for i, rel := range relPaths {
		i, rel := i, rel
		p.Go(func(ctx context.Context) error {
			abs := filepath.Join(root, rel)
			source, err := os.ReadFile(abs)
			if err != nil {
				results[i] = result{warning: &model.Finding{
					Rule: model.RuleParseWarning, File: rel,
					Message: "unreadable: " + err.Error(),
				}}
				return nil
			}
			pf, err := registry.Parse(abs, rel, source)
			if err != nil {
				results[i] = result{warning: &model.Finding{
					Rule: model.RuleParseWarning, File: rel,
					Message: "parse failed: " + err.Error(),
				}}
				return nil
			}
			results[i] = result{pf: pf}
			return nil
		})
	}
	_ = p.Wait()

	files := make([]*model.ParsedFile, 0, len(relPaths))
	var warnings []model.Finding
	for _, r := range results {
		if r.pf != nil {
			files = append(files, r.pf)
		}
		if r.warning != nil {
			warnings = append(warnings, *r.warning)
		}
	}
	return files, warnings
}

func filterTestFiles(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !rules.IsTestFile(p) {
			out = append(out, p)
		}
	}
	return out
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hollowcheck")
	}
	return filepath.Join(dir, "hollowcheck", "depverify")
}
