package rules

import (
	"fmt"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// stubFunction implements detector (e): every declaration classified
// as a stub emits a finding, unless it's an abstract/interface member
// (which can have no body by definition).
func stubFunction(store *facts.Store) []model.Finding {
	var findings []model.Finding
	store.Declarations(func(file *model.ParsedFile, d *model.Declaration) {
		if !d.IsStub || d.IsInterfaceMember {
			return
		}
		findings = append(findings, model.Finding{
			Rule:        model.RuleStubFunction,
			Severity:    model.SeverityHigh,
			Points:      10,
			File:        file.RelPath,
			Line:        d.StartLine,
			Message:     fmt.Sprintf("%q is a stub (%s)", d.Name, d.StubClass),
			RuleContext: d.Name,
		})
	})
	return findings
}
