package rules

import (
	"fmt"
	"sort"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// godObject implements detector (h): five independent thresholds over
// file size, function size/complexity, file function density, and
// class method count.
func godObject(store *facts.Store, c *model.Contract) []model.Finding {
	var findings []model.Finding
	g := c.GodObjects
	if !g.Enabled {
		return findings
	}

	for _, pf := range store.Files() {
		if g.MaxFileLines > 0 && pf.TotalLineCount > g.MaxFileLines {
			findings = append(findings, godFinding(pf.RelPath, 1,
				fmt.Sprintf("file has %d lines, exceeds max_file_lines %d", pf.TotalLineCount, g.MaxFileLines),
				"max_file_lines"))
		}
		if g.MaxFunctionsPerFile > 0 && pf.FunctionCount > g.MaxFunctionsPerFile {
			findings = append(findings, godFinding(pf.RelPath, 1,
				fmt.Sprintf("file has %d functions, exceeds max_functions_per_file %d", pf.FunctionCount, g.MaxFunctionsPerFile),
				"max_functions_per_file"))
		}
		for _, d := range pf.Declarations {
			if d.Kind != model.KindFunction && d.Kind != model.KindMethod {
				continue
			}
			lines := d.EndLine - d.StartLine + 1
			if g.MaxFunctionLines > 0 && lines > g.MaxFunctionLines {
				findings = append(findings, godFinding(pf.RelPath, d.StartLine,
					fmt.Sprintf("%q has %d lines, exceeds max_function_lines %d", d.Name, lines, g.MaxFunctionLines),
					"max_function_lines"))
			}
			if g.MaxFunctionComplexity > 0 && d.Complexity > g.MaxFunctionComplexity {
				findings = append(findings, godFinding(pf.RelPath, d.StartLine,
					fmt.Sprintf("%q has complexity %d, exceeds max_function_complexity %d", d.Name, d.Complexity, g.MaxFunctionComplexity),
					"max_function_complexity"))
			}
		}
		if g.MaxClassMethods > 0 {
			classes := make([]string, 0, len(pf.MethodCountsByClass))
			for class := range pf.MethodCountsByClass {
				classes = append(classes, class)
			}
			sort.Strings(classes)
			for _, class := range classes {
				count := pf.MethodCountsByClass[class]
				if count > g.MaxClassMethods {
					findings = append(findings, godFinding(pf.RelPath, 1,
						fmt.Sprintf("class %q has %d methods, exceeds max_class_methods %d", class, count, g.MaxClassMethods),
						"max_class_methods"))
				}
			}
		}
	}
	return findings
}

func godFinding(file string, line int, msg, context string) model.Finding {
	return model.Finding{
		Rule:        model.RuleGodObject,
		Severity:    model.SeverityMedium,
		Points:      8,
		File:        file,
		Line:        line,
		Message:     msg,
		RuleContext: context,
	}
}
