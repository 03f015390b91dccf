// Package langs implements the Language Registry and Syntax Analyzer:
// tree-sitter-backed extraction of declarations, imports, complexity,
// and stub classification for every language hollowcheck supports.
package langs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Analyzer is the capability set every language implementation
// provides: parse, extract declarations, compute complexity, classify
// stubs, extract imports, count methods per class. There is no
// inheritance hierarchy — each language is one value satisfying this
// interface, registered against its extensions.
type Analyzer interface {
	// Name is the language id stamped onto ParsedFile.Language.
	Name() string
	// Parse turns raw source into a ParsedFile. Both paths are stored
	// on the result; relPath is the one findings report.
	Parse(absPath, relPath string, source []byte) (*model.ParsedFile, error)
}

// Registry maps a lowercased file extension (including the leading
// dot) to the analyzer responsible for it. Dispatch is deterministic;
// unregistered extensions are skipped by callers with no finding.
type Registry struct {
	byExt map[string]Analyzer
}

// NewRegistry builds the default registry covering every language
// named in the supported-languages table: Go, Rust, Python, Java,
// TypeScript/TSX, JavaScript, C, C++, plus Ruby and PHP, and the
// regex-based Scala/Swift fallback analyzers.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Analyzer)}

	r.register(newTreeSitterAnalyzer(goSpec), ".go")
	r.register(newTreeSitterAnalyzer(rustSpec), ".rs")
	r.register(newTreeSitterAnalyzer(pythonSpec), ".py", ".pyw", ".pyi")
	r.register(newTreeSitterAnalyzer(javaSpec), ".java")
	r.register(newTreeSitterAnalyzer(typescriptSpec), ".ts", ".mts")
	r.register(newTreeSitterAnalyzer(tsxSpec), ".tsx")
	r.register(newTreeSitterAnalyzer(javascriptSpec), ".js", ".jsx", ".mjs")
	r.register(newTreeSitterAnalyzer(cSpec), ".c", ".h")
	r.register(newTreeSitterAnalyzer(cppSpec), ".cpp", ".cc", ".cxx", ".hpp", ".hxx")
	r.register(newTreeSitterAnalyzer(rubySpec), ".rb")
	r.register(newTreeSitterAnalyzer(phpSpec), ".php")

	r.register(newLineAnalyzer(scalaLineSpec), ".scala", ".sc")
	r.register(newLineAnalyzer(swiftLineSpec), ".swift")

	return r
}

func (r *Registry) register(a Analyzer, exts ...string) {
	for _, ext := range exts {
		r.byExt[ext] = a
	}
}

// Lookup returns the analyzer registered for path's extension, or
// (nil, false) if the extension is unregistered.
func (r *Registry) Lookup(path string) (Analyzer, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	a, ok := r.byExt[ext]
	return a, ok
}

// Parse dispatches path to its registered analyzer and parses source.
// Returns a "no analyzer registered" error if no analyzer handles
// path.
func (r *Registry) Parse(absPath, relPath string, source []byte) (*model.ParsedFile, error) {
	a, ok := r.Lookup(relPath)
	if !ok {
		return nil, fmt.Errorf("langs: no analyzer registered for %s", relPath)
	}
	return a.Parse(absPath, relPath, source)
}
