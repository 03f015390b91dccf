package rules

import (
	"path"
	"strings"
)

// IsTestFile implements the Glossary's test-file-pattern definition:
// a relative path is a test file iff it matches any of the listed
// glob/suffix forms, or it contains a "/test/" or "/tests/" segment
// (so a top-level "test/" or "tests/" directory does not count). It is
// exported so the engine's include_test_files contract option can
// filter the walked file list the same way the Rule Evaluator
// recognizes test files.
func IsTestFile(relPath string) bool {
	return isTestFile(relPath)
}

// isTestFile is the package-internal form used by detectors.
func isTestFile(relPath string) bool {
	base := path.Base(relPath)
	lower := strings.ToLower(relPath)

	if strings.Contains(lower, "/test/") || strings.Contains(lower, "/tests/") {
		return true
	}
	if strings.HasSuffix(base, "_test.go") {
		return true
	}
	if strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py") {
		return true
	}
	if strings.HasSuffix(base, "_test.py") {
		return true
	}
	for _, ext := range []string{".js", ".ts", ".jsx", ".tsx"} {
		if strings.HasSuffix(base, ".test"+ext) || strings.HasSuffix(base, ".spec"+ext) {
			return true
		}
	}
	if strings.HasSuffix(base, "Test.java") {
		return true
	}
	return false
}
