// Package facts implements the Fact Store: per-file and per-symbol
// fact collection shared read-only by every detector in the Rule
// Evaluator. Construction is the only mutation point.
package facts

import (
	"sort"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Store holds the frozen set of ParsedFiles for one analysis run,
// keyed by relative path, plus indexes built once at construction so
// detectors never re-scan the full file list.
type Store struct {
	files    map[string]*model.ParsedFile
	ordered  []*model.ParsedFile // sorted by RelPath, for deterministic iteration
	scanned  map[string]bool     // every path the walker yielded, parsed or not
}

// New builds a Store from the parsed files of one run plus the full
// set of relative paths the walker yielded (scanned may include paths
// with no registered analyzer, e.g. README.md — the Missing File
// detector needs existence, not parse results, for those). Files is
// consumed by reference; callers must not mutate its ParsedFiles
// afterward — the Fact Store is frozen from this point on.
func New(files []*model.ParsedFile, scanned []string) *Store {
	s := &Store{
		files:   make(map[string]*model.ParsedFile, len(files)),
		scanned: make(map[string]bool, len(scanned)),
	}
	for _, f := range files {
		s.files[f.RelPath] = f
	}
	for _, p := range scanned {
		s.scanned[p] = true
	}
	s.ordered = make([]*model.ParsedFile, len(files))
	copy(s.ordered, files)
	sort.Slice(s.ordered, func(i, j int) bool {
		return s.ordered[i].RelPath < s.ordered[j].RelPath
	})
	return s
}

// Exists reports whether relPath was present in the scanned tree,
// independent of whether it had a registered language analyzer.
func (s *Store) Exists(relPath string) bool {
	if s.scanned[relPath] {
		return true
	}
	return s.files[relPath] != nil
}

// File returns the ParsedFile at relPath, or nil if it wasn't part of
// this run (not scanned, or an unregistered extension).
func (s *Store) File(relPath string) *model.ParsedFile {
	return s.files[relPath]
}

// HasFile reports whether relPath was parsed, i.e. its extension was
// registered to an analyzer. Detectors that only need existence
// (Missing File) should check the broader scanned-path set via
// Exists, not this index.
func (s *Store) HasFile(relPath string) bool {
	_, ok := s.files[relPath]
	return ok
}

// Files returns every parsed file, sorted by relative path.
func (s *Store) Files() []*model.ParsedFile {
	return s.ordered
}

// FindDeclaration searches for a declaration by name and kind, either
// within one file (file != "") or across every file in path order
// (file == ""), returning the first match and the file it lives in.
func (s *Store) FindDeclaration(name string, kind model.Kind, file string) (*model.Declaration, string) {
	if file != "" {
		pf := s.files[file]
		if pf == nil {
			return nil, ""
		}
		if d := pf.FindDeclaration(name, kind); d != nil {
			return d, file
		}
		return nil, ""
	}
	for _, pf := range s.ordered {
		if d := pf.FindDeclaration(name, kind); d != nil {
			return d, pf.RelPath
		}
	}
	return nil, ""
}

// Declarations iterates every declaration across every file, in file
// order then declaration order, invoking fn with the owning file.
func (s *Store) Declarations(fn func(file *model.ParsedFile, d *model.Declaration)) {
	for _, pf := range s.ordered {
		for i := range pf.Declarations {
			fn(pf, &pf.Declarations[i])
		}
	}
}

// Todos iterates every Todo across every file, in file order.
func (s *Store) Todos(fn func(file *model.ParsedFile, td *model.Todo)) {
	for _, pf := range s.ordered {
		for i := range pf.Todos {
			fn(pf, &pf.Todos[i])
		}
	}
}

// Imports iterates every Import across every file, in file order.
func (s *Store) Imports(fn func(file *model.ParsedFile, imp *model.Import)) {
	for _, pf := range s.ordered {
		for i := range pf.Imports {
			fn(pf, &pf.Imports[i])
		}
	}
}

// ParseWarnings returns a parse_warning Finding for every file that
// recovered from a partial parse instead of failing the run outright.
func (s *Store) ParseWarnings() []model.Finding {
	var findings []model.Finding
	for _, pf := range s.ordered {
		if pf.ParseWarning == "" {
			continue
		}
		findings = append(findings, model.Finding{
			Rule:     model.RuleParseWarning,
			Severity: model.SeverityLow,
			Points:   0,
			File:     pf.RelPath,
			Line:     0,
			Message:  pf.ParseWarning,
		})
	}
	return findings
}
