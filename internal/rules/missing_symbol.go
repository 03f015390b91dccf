package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// missingSymbol implements detector (b): every contract-required
// symbol absent from its declared file's declarations emits a
// critical finding.
func missingSymbol(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	for _, rs := range c.RequiredSymbols {
		if d, _ := store.FindDeclaration(rs.Name, rs.Kind, rs.File); d != nil {
			continue
		}
		findings = append(findings, missingSymbolFinding(rs.Name, rs.Kind, rs.File))
	}
	return findings
}

func missingSymbolFinding(name string, kind model.Kind, file string) model.Finding {
	return model.Finding{
		Rule:        model.RuleMissingSymbol,
		Severity:    model.SeverityCritical,
		Points:      15,
		File:        file,
		Line:        0,
		Message:     fmt.Sprintf("required symbol %q (%s) not found", name, kind),
		RuleContext: name,
	}
}
