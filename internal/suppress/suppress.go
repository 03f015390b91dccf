// Package suppress implements the Suppression Engine: three inline
// comment directive forms that filter findings before scoring.
package suppress

import (
	"regexp"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// directivePattern matches any of the three forms in one pass; group 1
// is the directive keyword, group 2 the rule id (or "*"), group 3 an
// optional free-text reason after " - ".
var directivePattern = regexp.MustCompile(
	`hollowcheck:(ignore-file|ignore-next-line|ignore)\s+(\S+)(?:\s*-\s*(.*))?`,
)

// wildcard is the special rule token that suppresses every rule.
const wildcard = "*"

// directive is one parsed suppression comment.
type directive struct {
	rule   string
	reason string
}

// Engine accumulates suppression state across every scanned file and
// answers whether a given (file, line, rule) finding is in scope of a
// directive. Scope membership is tracked via hashed uint64 keys rather
// than concatenated string keys.
type Engine struct {
	fileWide map[uint64]string // hash(file, rule) -> reason
	lineUp   map[uint64]string // hash(file, line, rule) -> reason, for ignore-next-line / ignore
}

// New builds an empty Engine.
func New() *Engine {
	return &Engine{
		fileWide: make(map[uint64]string),
		lineUp:   make(map[uint64]string),
	}
}

// Scan parses every directive in pf and records it. Call once per
// file before Apply.
func (e *Engine) Scan(pf *model.ParsedFile) {
	matches := directivePattern.FindAllSubmatchIndex(pf.Source, -1)
	for _, m := range matches {
		kind := string(pf.Source[m[2]:m[3]])
		rule := string(pf.Source[m[4]:m[5]])
		reason := ""
		if m[6] >= 0 {
			reason = string(pf.Source[m[6]:m[7]])
		}
		line := pf.Line(m[0])

		switch kind {
		case "ignore-file":
			e.fileWide[fileKey(pf.RelPath, rule)] = reason
		case "ignore-next-line":
			e.lineUp[lineKey(pf.RelPath, line+1, rule)] = reason
		case "ignore":
			e.lineUp[lineKey(pf.RelPath, line, rule)] = reason
		}
	}
}

// matchReason returns the suppression reason and whether a (file,
// line, rule) triple is in scope of some recorded directive. Unknown
// rule names were already recorded verbatim by Scan and simply never
// match any real finding's rule, so they're silently ignored.
func (e *Engine) matchReason(file string, line int, rule string) (string, bool) {
	if reason, ok := e.fileWide[fileKey(file, rule)]; ok {
		return reason, true
	}
	if reason, ok := e.fileWide[fileKey(file, wildcard)]; ok {
		return reason, true
	}
	if reason, ok := e.lineUp[lineKey(file, line, rule)]; ok {
		return reason, true
	}
	if reason, ok := e.lineUp[lineKey(file, line, wildcard)]; ok {
		return reason, true
	}
	return "", false
}

// Apply filters findings against every recorded directive. Suppressed
// findings are dropped unless showSuppressed is set, in which case
// they are retained with Suppressed/SuppressionReason populated.
func (e *Engine) Apply(findings []model.Finding, showSuppressed bool) []model.Finding {
	out := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Rule == model.RuleParseWarning {
			// Informational findings are never suppressible.
			out = append(out, f)
			continue
		}
		reason, suppressed := e.matchReason(f.File, f.Line, string(f.Rule))
		if !suppressed {
			out = append(out, f)
			continue
		}
		if showSuppressed {
			f.Suppressed = true
			f.SuppressionReason = reason
			out = append(out, f)
		}
	}
	return out
}

func fileKey(file, rule string) uint64 {
	return xxhash.Sum64String(file + "\x00" + rule)
}

func lineKey(file string, line int, rule string) uint64 {
	return xxhash.Sum64String(file + "\x00" + strconv.Itoa(line) + "\x00" + rule)
}
