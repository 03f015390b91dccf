package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// forbiddenPattern implements detector (c): every regex match of a
// contract pattern anywhere in a non-excluded file's text emits one
// finding at the match's line. Test files are included unless the
// contract disables them for test paths.
func forbiddenPattern(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	if len(c.ForbiddenPatterns) == 0 {
		return findings
	}
	for _, pf := range store.Files() {
		if !c.IncludeTestFiles && isTestFile(pf.RelPath) {
			continue
		}
		for _, pat := range c.ForbiddenPatterns {
			locs := pat.Regex.FindAllIndex(pf.Source, -1)
			for _, loc := range locs {
				findings = append(findings, model.Finding{
					Rule:        model.RuleForbiddenPattern,
					Severity:    model.SeverityHigh,
					Points:      10,
					File:        pf.RelPath,
					Line:        pf.Line(loc[0]),
					Message:     fmt.Sprintf("forbidden pattern matched: %s", describePattern(pat)),
					RuleContext: pat.Regex.String(),
				})
			}
		}
	}
	return findings
}

func describePattern(p model.ForbiddenPattern) string {
	if p.Description != "" {
		return p.Description
	}
	return p.Regex.String()
}
