package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// hollowTodo implements detector (g): every TODO/FIXME/XXX/HACK
// comment classified hollow by the analyzer emits a low-severity
// finding, when enabled by the contract.
func hollowTodo(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	if !c.HollowTodos.Enabled {
		return findings
	}
	store.Todos(func(file *model.ParsedFile, td *model.Todo) {
		if !td.IsHollow {
			return
		}
		findings = append(findings, model.Finding{
			Rule:        model.RuleHollowTodo,
			Severity:    model.SeverityLow,
			Points:      5,
			File:        file.RelPath,
			Line:        td.Line,
			Message:     fmt.Sprintf("hollow TODO: %s", td.Text),
			RuleContext: td.Text,
		})
	})
	return findings
}
