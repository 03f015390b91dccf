package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// mockData implements detector (f): every mock-signature pattern
// match emits a low-severity finding, skipping test files entirely
// when skip_test_files is set (the contract default).
func mockData(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	patterns := c.MockSignatures.Patterns
	if len(patterns) == 0 {
		return findings
	}
	for _, pf := range store.Files() {
		if c.MockSignatures.SkipTestFiles && isTestFile(pf.RelPath) {
			continue
		}
		for _, pat := range patterns {
			for _, loc := range pat.Regex.FindAllIndex(pf.Source, -1) {
				findings = append(findings, model.Finding{
					Rule:        model.RuleMockData,
					Severity:    model.SeverityLow,
					Points:      3,
					File:        pf.RelPath,
					Line:        pf.Line(loc[0]),
					Message:     fmt.Sprintf("mock data pattern matched: %s", describePattern(pat)),
					RuleContext: pat.Regex.String(),
				})
			}
		}
	}
	return findings
}
