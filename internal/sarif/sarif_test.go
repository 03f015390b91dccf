package sarif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestMarshal_ValidDocumentShape(t *testing.T) {
	report := &model.Report{
		Version:   model.ReportVersion,
		Score:     18,
		Grade:     model.GradeB,
		Threshold: 25,
		Passed:    true,
		Violations: []model.Finding{
			{Rule: model.RuleStubFunction, Severity: model.SeverityHigh, Points: 10, File: "a.go", Line: 4, Message: "stub"},
			{Rule: model.RuleMissingFile, Severity: model.SeverityCritical, Points: 20, File: "README.md", Message: "missing"},
		},
	}

	data, err := Marshal(report, "1.0.0")
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Len(t, run.Tool.Driver.Rules, 2)
	require.Len(t, run.Results, 2)
	assert.Equal(t, "README.md", run.Results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Nil(t, run.Results[1].Locations[0].PhysicalLocation.Region, "expected no region for line-less finding")
	require.NotNil(t, run.Results[0].Locations[0].PhysicalLocation.Region)
	assert.Equal(t, 4, run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestMarshal_EmptyViolations(t *testing.T) {
	report := &model.Report{Version: model.ReportVersion, Score: 0, Grade: model.GradeA, Threshold: 25, Passed: true}
	data, err := Marshal(report, "")
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Empty(t, doc.Runs[0].Results)
	assert.Equal(t, "dev", doc.Runs[0].Tool.Driver.Version)
}
