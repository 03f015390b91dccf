package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Version:   model.ReportVersion,
		Score:     15,
		Grade:     model.GradeB,
		Threshold: 25,
		Passed:    true,
		Violations: []model.Finding{
			{Rule: model.RuleStubFunction, Severity: model.SeverityHigh, Points: 10, File: "a.go", Line: 3, Message: "stub body"},
		},
		Summary: model.Summary{FilesScanned: 2, ViolationsTotal: 1, BySeverity: map[model.Severity]int{model.SeverityHigh: 1}},
		ByRule:  map[model.Rule]model.RuleBreakdown{model.RuleStubFunction: {Points: 10, Count: 1}},
	}
}

func TestRender_JSON(t *testing.T) {
	out, err := render(sampleReport(), "json", "1.0.0")
	require.NoError(t, err)

	var decoded model.Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 15, decoded.Score)
}

func TestRender_Pretty(t *testing.T) {
	out, err := render(sampleReport(), "pretty", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, string(out), "stub body")
}

func TestRender_Sarif(t *testing.T) {
	out, err := render(sampleReport(), "sarif", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, string(out), "sarif-2.1.0.json\"")
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := render(sampleReport(), "xml", "1.0.0")
	assert.Error(t, err, "expected error for unknown format")
}

func TestScale(t *testing.T) {
	assert.Equal(t, 500, scale(1000, 0.5))
	assert.Equal(t, 1, scale(1, 0.5), "scale should floor at 1")
	assert.Equal(t, 20, scale(10, 2))
}

func TestScaleGodObjects(t *testing.T) {
	cnt := &model.Contract{GodObjects: model.GodObjectConfig{
		MaxFileLines: 1000, MaxFunctionLines: 150, MaxFunctionComplexity: 25,
		MaxFunctionsPerFile: 50, MaxClassMethods: 40,
	}}
	scaleGodObjects(cnt, 0.5)
	assert.Equal(t, 500, cnt.GodObjects.MaxFileLines)
}
