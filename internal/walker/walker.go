// Package walker implements the File Walker: it yields relative paths
// under a root, honoring the contract's excluded_paths globs and
// repository .gitignore files.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/hollowcheck/hollowcheck/pkg/langs"
)

// Walker finds candidate source files under a root directory.
type Walker struct {
	registry        *langs.Registry
	excludedPaths   []string
	honorGitignore  bool
	includeTestDirs bool
}

// New builds a Walker. excludedPaths are gitignore-syntax globs from
// the contract; registry decides which files are even worth
// analyzing — an input file with no matching registry entry is
// skipped rather than treated as an error.
func New(registry *langs.Registry, excludedPaths []string, honorGitignore bool) *Walker {
	return &Walker{registry: registry, excludedPaths: excludedPaths, honorGitignore: honorGitignore, includeTestDirs: true}
}

// Walk returns every relative path under root that the registry can
// parse and that survives the excluded_paths and .gitignore filters.
// The second return value is the full set of relative paths seen
// (including ones the registry can't parse), used by the Missing File
// detector to check existence of non-source files like README.md.
func (w *Walker) Walk(root string) (parseable []string, allPaths []string, err error) {
	matchers := w.buildMatchers(root)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}
	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, nil, err
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.Type()&fs.ModeSymlink != 0 {
			resolved, resErr := filepath.EvalSymlinks(path)
			if resErr != nil || !isWithinRoot(resolved, absRoot) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			if relPath == ".git" || matchExcluded(matchers, relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchExcluded(matchers, relPath, false) {
			return nil
		}

		allPaths = append(allPaths, relPath)
		if _, ok := w.registry.Lookup(path); ok {
			parseable = append(parseable, relPath)
		}
		return nil
	})

	return parseable, allPaths, walkErr
}

func (w *Walker) buildMatchers(root string) []gitignore.Matcher {
	var patterns []gitignore.Pattern
	for _, p := range w.excludedPaths {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	if w.honorGitignore {
		gitRoot := findGitRoot(root)
		if gitRoot != "" {
			fsys := osfs.New(gitRoot)
			if gitPatterns, err := gitignore.ReadPatterns(fsys, nil); err == nil {
				patterns = append(patterns, gitPatterns...)
			}
		}
	}
	if len(patterns) == 0 {
		return nil
	}
	return []gitignore.Matcher{gitignore.NewMatcher(patterns)}
}

func matchExcluded(matchers []gitignore.Matcher, relPath string, isDir bool) bool {
	if len(matchers) == 0 {
		return false
	}
	parts := strings.Split(relPath, "/")
	for _, m := range matchers {
		if m.Match(parts, isDir) {
			return true
		}
	}
	return false
}

func findGitRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isWithinRoot(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
