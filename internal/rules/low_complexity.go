package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// lowComplexity implements detector (d): a declaration whose
// complexity falls under the contract's minimum emits a finding; a
// declaration that cannot be found at all falls back to a
// missing_symbol finding, deduplicated against explicit
// required_symbols entries.
func lowComplexity(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding

	alreadyRequired := make(map[string]bool, len(c.RequiredSymbols))
	for _, rs := range c.RequiredSymbols {
		alreadyRequired[rs.Name+"|"+rs.File] = true
	}

	for _, cr := range c.ComplexityRequirements {
		d, file := store.FindDeclaration(cr.Symbol, model.KindFunction, cr.File)
		if d == nil {
			// name-only search over KindFunction missed method
			// declarations too; retry with KindMethod before giving up.
			d, file = store.FindDeclaration(cr.Symbol, model.KindMethod, cr.File)
		}
		if d == nil {
			key := cr.Symbol + "|" + cr.File
			if alreadyRequired[key] {
				continue
			}
			findings = append(findings, missingSymbolFinding(cr.Symbol, model.KindFunction, cr.File))
			continue
		}
		if d.Complexity < cr.MinComplexity {
			findings = append(findings, model.Finding{
				Rule:        model.RuleLowComplexity,
				Severity:    model.SeverityHigh,
				Points:      10,
				File:        file,
				Line:        d.StartLine,
				Message:     fmt.Sprintf("%q has complexity %d, below required minimum %d", cr.Symbol, d.Complexity, cr.MinComplexity),
				RuleContext: cr.Symbol,
			})
		}
	}
	return findings
}
