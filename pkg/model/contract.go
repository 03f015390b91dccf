package model

import "regexp"

// Contract is the immutable declarative description a source tree is
// validated against. It is loaded once (see package contract) and
// never mutated afterward; compiled regexes live alongside their
// source patterns so detectors never recompile them.
type Contract struct {
	RequiredFiles   []RequiredFile
	RequiredSymbols []RequiredSymbol
	ForbiddenPatterns []ForbiddenPattern
	ComplexityRequirements []ComplexityRequirement
	RequiredTests   []RequiredTest
	MockSignatures  MockSignatureConfig
	GodObjects      GodObjectConfig
	HollowTodos     HollowTodoConfig
	Dependencies    DependencyConfig
	ExcludedPaths   []string
	IncludeTestFiles bool
	Threshold       int
}

// RequiredFile describes one file the contract demands exist.
type RequiredFile struct {
	Path     string
	Required bool
}

// RequiredSymbol describes one declaration the contract demands exist.
type RequiredSymbol struct {
	Name string
	Kind Kind
	File string
}

// ForbiddenPattern is a compiled regex the tree must not match, plus the
// human-readable reason surfaced in findings.
type ForbiddenPattern struct {
	Regex       *regexp.Regexp
	Description string
}

// ComplexityRequirement demands a minimum cyclomatic complexity for a
// named declaration, optionally scoped to one file.
type ComplexityRequirement struct {
	Symbol        string
	File          string // empty means search all files
	MinComplexity int
}

// RequiredTest describes one test function the contract demands exist.
type RequiredTest struct {
	Name string
	File string // empty means search any test-file-pattern match
}

// MockSignatureConfig configures the Mock Data detector.
type MockSignatureConfig struct {
	Patterns      []ForbiddenPattern
	SkipTestFiles bool
}

// GodObjectConfig configures the God Object detector.
type GodObjectConfig struct {
	Enabled              bool
	MaxFileLines         int
	MaxFunctionLines     int
	MaxFunctionComplexity int
	MaxFunctionsPerFile  int
	MaxClassMethods      int
}

// HollowTodoConfig toggles the Hollow TODO detector.
type HollowTodoConfig struct {
	Enabled bool
}

// DependencyConfig configures the Dependency Verifier.
type DependencyConfig struct {
	EnabledRegistries map[string]bool // "pypi", "npm", "crates", "goproxy"
	Allowlist         []string
	CacheTTLHours     int
	FailOnTimeout     bool
	ProbeTimeoutSeconds int
	MaxInFlight       int
}
