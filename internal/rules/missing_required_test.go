package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// missingTest implements detector (j): a required test function not
// found in its declared file (or, absent a file, in any test-pattern
// file) emits a low-severity finding.
func missingTest(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	for _, rt := range c.RequiredTests {
		if findTestFunction(store, rt) {
			continue
		}
		findings = append(findings, model.Finding{
			Rule:        model.RuleMissingTest,
			Severity:    model.SeverityLow,
			Points:      5,
			File:        rt.File,
			Line:        0,
			Message:     fmt.Sprintf("required test %q not found", rt.Name),
			RuleContext: rt.Name,
		})
	}
	return findings
}

func findTestFunction(store *facts.Store, rt model.RequiredTest) bool {
	if rt.File != "" {
		pf := store.File(rt.File)
		if pf == nil {
			return false
		}
		return pf.FindDeclaration(rt.Name, model.KindFunction) != nil ||
			pf.FindDeclaration(rt.Name, model.KindMethod) != nil
	}
	found := false
	for _, pf := range store.Files() {
		if !isTestFile(pf.RelPath) {
			continue
		}
		if pf.FindDeclaration(rt.Name, model.KindFunction) != nil ||
			pf.FindDeclaration(rt.Name, model.KindMethod) != nil {
			found = true
			break
		}
	}
	return found
}
