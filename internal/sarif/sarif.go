// Package sarif renders a model.Report as a SARIF 2.1.0 log, the
// format CI systems (GitHub code scanning, etc.) consume directly.
package sarif

import (
	"encoding/json"
	"sort"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

const (
	schemaURI      = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion   = "2.1.0"
	toolName       = "hollowcheck"
	informationURI = "https://github.com/hollowcheck/hollowcheck"
)

type document struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []run  `json:"runs"`
}

type run struct {
	Tool    tool     `json:"tool"`
	Results []result `json:"results"`
}

type tool struct {
	Driver driver `json:"driver"`
}

type driver struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	InformationURI string `json:"informationUri"`
	Rules          []rule `json:"rules"`
}

type rule struct {
	ID               string           `json:"id"`
	ShortDescription multiformatText  `json:"shortDescription"`
	DefaultConfig    reportingConfig  `json:"defaultConfiguration"`
}

type multiformatText struct {
	Text string `json:"text"`
}

type reportingConfig struct {
	Level string `json:"level"`
}

type result struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   multiformatText `json:"message"`
	Locations []location      `json:"locations,omitempty"`
}

type location struct {
	PhysicalLocation physicalLocation `json:"physicalLocation"`
}

type physicalLocation struct {
	ArtifactLocation artifactLocation `json:"artifactLocation"`
	Region           *region          `json:"region,omitempty"`
}

type artifactLocation struct {
	URI string `json:"uri"`
}

type region struct {
	StartLine int `json:"startLine"`
}

// Marshal renders report as an indented SARIF 2.1.0 JSON document.
// version is the hollowcheck build version stamped into the tool
// driver; an empty string renders as "dev".
func Marshal(report *model.Report, version string) ([]byte, error) {
	if version == "" {
		version = "dev"
	}
	doc := buildDocument(report, version)
	return json.MarshalIndent(doc, "", "  ")
}

func buildDocument(report *model.Report, version string) document {
	rules, ruleIndex := buildRules(report.Violations)
	return document{
		Schema:  schemaURI,
		Version: sarifVersion,
		Runs: []run{{
			Tool: tool{Driver: driver{
				Name: toolName, Version: version, InformationURI: informationURI, Rules: rules,
			}},
			Results: buildResults(report.Violations, ruleIndex),
		}},
	}
}

func buildRules(violations []model.Finding) ([]rule, map[model.Rule]int) {
	seen := map[model.Rule]bool{}
	var names []model.Rule
	for _, f := range violations {
		if !seen[f.Rule] {
			seen[f.Rule] = true
			names = append(names, f.Rule)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	ruleIndex := make(map[model.Rule]int, len(names))
	rules := make([]rule, 0, len(names))
	for i, name := range names {
		ruleIndex[name] = i
		rules = append(rules, rule{
			ID:               string(name),
			ShortDescription: multiformatText{Text: ruleDescription(name)},
			DefaultConfig:    reportingConfig{Level: levelForSeverity(severityFor(violations, name))},
		})
	}
	return rules, ruleIndex
}

func buildResults(violations []model.Finding, ruleIndex map[model.Rule]int) []result {
	results := make([]result, 0, len(violations))
	for _, f := range violations {
		r := result{
			RuleID:    string(f.Rule),
			RuleIndex: ruleIndex[f.Rule],
			Level:     levelForSeverity(f.Severity),
			Message:   multiformatText{Text: f.Message},
		}
		if f.File != "" {
			loc := location{PhysicalLocation: physicalLocation{
				ArtifactLocation: artifactLocation{URI: f.File},
			}}
			if f.Line > 0 {
				loc.PhysicalLocation.Region = &region{StartLine: f.Line}
			}
			r.Locations = []location{loc}
		}
		results = append(results, r)
	}
	return results
}

func levelForSeverity(sev model.Severity) string {
	switch sev {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

// severityFor picks the highest severity observed for rule across
// violations, used for the rule's default SARIF level.
func severityFor(violations []model.Finding, name model.Rule) model.Severity {
	best := model.SeverityLow
	for _, f := range violations {
		if f.Rule == name && f.Severity.Weight() > best.Weight() {
			best = f.Severity
		}
	}
	return best
}

func ruleDescription(r model.Rule) string {
	switch r {
	case model.RuleMissingFile:
		return "Required file is missing from the source tree"
	case model.RuleMissingSymbol:
		return "Required declaration is missing"
	case model.RuleForbiddenPattern:
		return "Source matches a forbidden pattern"
	case model.RuleLowComplexity:
		return "Declaration's cyclomatic complexity is below the required minimum"
	case model.RuleStubFunction:
		return "Function or method body is a stub"
	case model.RuleMockData:
		return "Source contains placeholder or mock data"
	case model.RuleHollowTodo:
		return "TODO-style comment carries no actionable content"
	case model.RuleGodObject:
		return "File, function, or class exceeds a size or complexity threshold"
	case model.RuleHallucinatedDependency:
		return "Import does not resolve to a real package on its registry"
	case model.RuleMissingTest:
		return "Required test function was not found"
	case model.RuleParseWarning:
		return "Source file could not be fully parsed"
	default:
		return "hollowcheck finding"
	}
}
