package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// missingFile implements detector (a): every contract-required file
// absent from the scanned tree emits a finding, critical if
// required=true, low otherwise.
func missingFile(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	for _, rf := range c.RequiredFiles {
		if store.Exists(rf.Path) {
			continue
		}
		severity := model.SeverityLow
		points := 5
		if rf.Required {
			severity = model.SeverityCritical
			points = 20
		}
		findings = append(findings, model.Finding{
			Rule:        model.RuleMissingFile,
			Severity:    severity,
			Points:      points,
			File:        rf.Path,
			Line:        0,
			Message:     fmt.Sprintf("required file %q is missing", rf.Path),
			RuleContext: rf.Path,
		})
	}
	return findings
}
