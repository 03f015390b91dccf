// Package rules implements the Rule Evaluator: nine independent
// detectors composed over a shared Fact Store and Contract, each
// producing zero or more Findings.
package rules

import (
	"sort"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Evaluate runs detectors (a)-(h) and (j) — every detector except
// Hallucinated Dependency (i), which the Dependency Verifier produces
// separately because it requires network I/O outside the Rule
// Evaluator's synchronous, pure-over-facts contract. Callers merge its
// findings with depverify's before sorting and scoring.
func Evaluate(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	findings = append(findings, missingFile(store, c)...)
	findings = append(findings, missingSymbol(store, c)...)
	findings = append(findings, forbiddenPattern(store, c)...)
	findings = append(findings, lowComplexity(store, c)...)
	findings = append(findings, stubFunction(store)...)
	findings = append(findings, mockData(store, c)...)
	findings = append(findings, hollowTodo(store, c)...)
	findings = append(findings, godObject(store, c)...)
	findings = append(findings, missingTest(store, c)...)
	return findings
}

// SortFindings applies a deterministic (file, line, rule name)
// tie-break across findings from every source (Rule Evaluator,
// Dependency Verifier, parse warnings).
func SortFindings(findings []model.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})
}
