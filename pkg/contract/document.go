// Package contract loads and validates the hollowcheck Contract from
// YAML, TOML, or JSON config files using koanf.
package contract

// document is the raw koanf-unmarshaled shape of a contract file. It
// mirrors the declarative contract schema field for field; Load()
// turns it into the compiled, immutable model.Contract the rest of
// hollowcheck consumes.
type document struct {
	RequiredFiles []struct {
		Path     string `koanf:"path"`
		Required bool   `koanf:"required"`
	} `koanf:"required_files"`

	RequiredSymbols []struct {
		Name string `koanf:"name"`
		Kind string `koanf:"kind"`
		File string `koanf:"file"`
	} `koanf:"required_symbols"`

	ForbiddenPatterns []struct {
		Pattern     string `koanf:"pattern"`
		Description string `koanf:"description"`
	} `koanf:"forbidden_patterns"`

	ComplexityRequirements []struct {
		Symbol        string `koanf:"symbol"`
		File          string `koanf:"file"`
		MinComplexity int    `koanf:"min_complexity"`
	} `koanf:"complexity_requirements"`

	RequiredTests []struct {
		Name string `koanf:"name"`
		File string `koanf:"file"`
	} `koanf:"required_tests"`

	MockSignatures struct {
		Patterns []struct {
			Pattern     string `koanf:"pattern"`
			Description string `koanf:"description"`
		} `koanf:"patterns"`
		SkipTestFiles bool `koanf:"skip_test_files"`
	} `koanf:"mock_signatures"`

	GodObjects struct {
		Enabled               bool `koanf:"enabled"`
		MaxFileLines          int  `koanf:"max_file_lines"`
		MaxFunctionLines      int  `koanf:"max_function_lines"`
		MaxFunctionComplexity int  `koanf:"max_function_complexity"`
		MaxFunctionsPerFile   int  `koanf:"max_functions_per_file"`
		MaxClassMethods       int  `koanf:"max_class_methods"`
	} `koanf:"god_objects"`

	HollowTodos struct {
		Enabled bool `koanf:"enabled"`
	} `koanf:"hollow_todos"`

	Dependencies struct {
		EnabledRegistries   []string `koanf:"enabled_registries"`
		Allowlist           []string `koanf:"allowlist"`
		CacheTTLHours       int      `koanf:"cache_ttl_hours"`
		FailOnTimeout       bool     `koanf:"fail_on_timeout"`
		ProbeTimeoutSeconds int      `koanf:"probe_timeout_seconds"`
		MaxInFlight         int      `koanf:"max_in_flight"`
	} `koanf:"dependencies"`

	ExcludedPaths    []string `koanf:"excluded_paths"`
	IncludeTestFiles bool     `koanf:"include_test_files"`
	Threshold        *int     `koanf:"threshold"`
}

// defaultDocument seeds fields the contract schema declares optional:
// threshold defaults to 25, dependency verifier defaults to a
// conservative 8-in-flight / 24h cache / 10s probe timeout.
func defaultDocument() *document {
	d := &document{}
	d.IncludeTestFiles = true
	d.MockSignatures.SkipTestFiles = true
	d.GodObjects.Enabled = true
	d.GodObjects.MaxFileLines = 1000
	d.GodObjects.MaxFunctionLines = 150
	d.GodObjects.MaxFunctionComplexity = 25
	d.GodObjects.MaxFunctionsPerFile = 50
	d.GodObjects.MaxClassMethods = 40
	d.HollowTodos.Enabled = true
	d.Dependencies.EnabledRegistries = []string{"pypi", "npm", "crates", "goproxy"}
	d.Dependencies.CacheTTLHours = 24
	d.Dependencies.ProbeTimeoutSeconds = 10
	d.Dependencies.MaxInFlight = 8
	threshold := 25
	d.Threshold = &threshold
	return d
}
