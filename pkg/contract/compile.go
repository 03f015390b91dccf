package contract

import (
	"fmt"
	"regexp"

	"github.com/hollowcheck/hollowcheck/internal/herrors"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// compile turns a raw document into a validated, immutable
// model.Contract: every regex is compiled once here so no detector
// ever calls regexp.Compile on the hot path.
func compile(doc *document, source string) (*model.Contract, error) {
	c := &model.Contract{
		ExcludedPaths:    doc.ExcludedPaths,
		IncludeTestFiles: doc.IncludeTestFiles,
		Threshold:        25,
	}
	if doc.Threshold != nil {
		c.Threshold = *doc.Threshold
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		return nil, herrors.Contract("contract.compile", source,
			fmt.Errorf("threshold must be between 0 and 100, got %d", c.Threshold))
	}

	for _, rf := range doc.RequiredFiles {
		if rf.Path == "" {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("required_files entry missing path"))
		}
		c.RequiredFiles = append(c.RequiredFiles, model.RequiredFile{
			Path:     rf.Path,
			Required: rf.Required,
		})
	}

	for _, rs := range doc.RequiredSymbols {
		if rs.Name == "" {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("required_symbols entry missing name"))
		}
		kind, err := parseKind(rs.Kind)
		if err != nil {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("required_symbols %q: %w", rs.Name, err))
		}
		c.RequiredSymbols = append(c.RequiredSymbols, model.RequiredSymbol{
			Name: rs.Name,
			Kind: kind,
			File: rs.File,
		})
	}

	for _, fp := range doc.ForbiddenPatterns {
		pat, err := compilePattern(fp.Pattern)
		if err != nil {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("forbidden_patterns %q: %w", fp.Pattern, err))
		}
		c.ForbiddenPatterns = append(c.ForbiddenPatterns, model.ForbiddenPattern{
			Regex:       pat,
			Description: fp.Description,
		})
	}

	for _, cr := range doc.ComplexityRequirements {
		if cr.Symbol == "" {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("complexity_requirements entry missing symbol"))
		}
		if cr.MinComplexity < 1 {
			return nil, herrors.Contract("contract.compile", source,
				fmt.Errorf("complexity_requirements %q: min_complexity must be >= 1", cr.Symbol))
		}
		c.ComplexityRequirements = append(c.ComplexityRequirements, model.ComplexityRequirement{
			Symbol:        cr.Symbol,
			File:          cr.File,
			MinComplexity: cr.MinComplexity,
		})
	}

	for _, rt := range doc.RequiredTests {
		if rt.Name == "" {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("required_tests entry missing name"))
		}
		c.RequiredTests = append(c.RequiredTests, model.RequiredTest{Name: rt.Name, File: rt.File})
	}

	for _, mp := range doc.MockSignatures.Patterns {
		pat, err := compilePattern(mp.Pattern)
		if err != nil {
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("mock_signatures.patterns %q: %w", mp.Pattern, err))
		}
		c.MockSignatures.Patterns = append(c.MockSignatures.Patterns, model.ForbiddenPattern{
			Regex:       pat,
			Description: mp.Description,
		})
	}
	c.MockSignatures.SkipTestFiles = doc.MockSignatures.SkipTestFiles

	c.GodObjects = model.GodObjectConfig{
		Enabled:               doc.GodObjects.Enabled,
		MaxFileLines:          doc.GodObjects.MaxFileLines,
		MaxFunctionLines:      doc.GodObjects.MaxFunctionLines,
		MaxFunctionComplexity: doc.GodObjects.MaxFunctionComplexity,
		MaxFunctionsPerFile:   doc.GodObjects.MaxFunctionsPerFile,
		MaxClassMethods:       doc.GodObjects.MaxClassMethods,
	}
	c.HollowTodos = model.HollowTodoConfig{Enabled: doc.HollowTodos.Enabled}

	registries := map[string]bool{}
	for _, r := range doc.Dependencies.EnabledRegistries {
		switch r {
		case "pypi", "npm", "crates", "goproxy":
			registries[r] = true
		default:
			return nil, herrors.Contract("contract.compile", source, fmt.Errorf("unknown registry %q", r))
		}
	}
	c.Dependencies = model.DependencyConfig{
		EnabledRegistries:   registries,
		Allowlist:           doc.Dependencies.Allowlist,
		CacheTTLHours:       doc.Dependencies.CacheTTLHours,
		FailOnTimeout:       doc.Dependencies.FailOnTimeout,
		ProbeTimeoutSeconds: doc.Dependencies.ProbeTimeoutSeconds,
		MaxInFlight:         doc.Dependencies.MaxInFlight,
	}
	if c.Dependencies.MaxInFlight < 1 {
		c.Dependencies.MaxInFlight = 8
	}
	if c.Dependencies.ProbeTimeoutSeconds < 1 {
		c.Dependencies.ProbeTimeoutSeconds = 10
	}
	if c.Dependencies.CacheTTLHours < 1 {
		c.Dependencies.CacheTTLHours = 24
	}

	return c, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}
	return re, nil
}

func parseKind(s string) (model.Kind, error) {
	switch s {
	case "", "function":
		return model.KindFunction, nil
	case "method":
		return model.KindMethod, nil
	case "type":
		return model.KindType, nil
	case "interface":
		return model.KindInterface, nil
	case "enum":
		return model.KindEnum, nil
	case "const":
		return model.KindConst, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}
