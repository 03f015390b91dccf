// Package score implements the Scoring Pipeline: it folds retained
// findings into a capped 0-100 score, a letter grade, a pass/fail
// verdict against the contract's threshold, and a per-rule breakdown.
package score

import "github.com/hollowcheck/hollowcheck/pkg/model"

// maxScore is the cap applied to the summed point total.
const maxScore = 100

// Compute builds the final Report from the findings surviving
// suppression. filesScanned is the count of files the Fact Store
// parsed, used only for the Summary's informational stats.
func Compute(findings []model.Finding, threshold, filesScanned int) *model.Report {
	summary := model.NewSummary()
	summary.FilesScanned = filesScanned

	byRule := make(map[model.Rule]model.RuleBreakdown)
	total := 0
	for _, f := range findings {
		if f.Rule == model.RuleParseWarning {
			continue
		}
		total += f.Points
		summary.ViolationsTotal++
		summary.BySeverity[f.Severity]++

		b := byRule[f.Rule]
		b.Points += f.Points
		b.Count++
		byRule[f.Rule] = b
	}

	score := clamp(total, 0, maxScore)

	return &model.Report{
		Version:    model.ReportVersion,
		Score:      score,
		Grade:      model.GradeForScore(score),
		Threshold:  threshold,
		Passed:     score <= threshold,
		Violations: findings,
		Summary:    summary,
		ByRule:     byRule,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
