package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestCompute_CapsAtMaxScore(t *testing.T) {
	var findings []model.Finding
	for i := 0; i < 10; i++ {
		findings = append(findings, model.Finding{
			Rule: model.RuleStubFunction, Severity: model.SeverityHigh, Points: 15, File: "a.go",
		})
	}
	r := Compute(findings, 25, 3)
	assert.Equal(t, 100, r.Score, "score should be capped")
	assert.Equal(t, model.GradeF, r.Grade)
	assert.False(t, r.Passed, "expected fail at score 100 with threshold 25")
}

func TestCompute_PassUnderThreshold(t *testing.T) {
	findings := []model.Finding{
		{Rule: model.RuleHollowTodo, Severity: model.SeverityLow, Points: 5, File: "a.go"},
		{Rule: model.RuleMockData, Severity: model.SeverityMedium, Points: 3, File: "b.go"},
	}
	r := Compute(findings, 25, 2)
	assert.Equal(t, 8, r.Score)
	assert.Equal(t, model.GradeA, r.Grade)
	assert.True(t, r.Passed)
}

func TestCompute_ParseWarningsExcludedFromScore(t *testing.T) {
	findings := []model.Finding{
		{Rule: model.RuleParseWarning, Points: 0, File: "broken.go"},
		{Rule: model.RuleStubFunction, Severity: model.SeverityHigh, Points: 10, File: "a.go"},
	}
	r := Compute(findings, 25, 1)
	assert.Equal(t, 10, r.Score, "parse_warning should be excluded")
	assert.Equal(t, 1, r.Summary.ViolationsTotal)
}

func TestCompute_ByRuleBreakdown(t *testing.T) {
	findings := []model.Finding{
		{Rule: model.RuleGodObject, Severity: model.SeverityMedium, Points: 8, File: "a.go"},
		{Rule: model.RuleGodObject, Severity: model.SeverityMedium, Points: 8, File: "b.go"},
	}
	r := Compute(findings, 25, 2)
	b := r.ByRule[model.RuleGodObject]
	assert.Equal(t, 16, b.Points)
	assert.Equal(t, 2, b.Count)
}
