package langs

import (
	"regexp"
	"strings"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

var todoMarkerPattern = regexp.MustCompile(`(?i)\b(TODO|FIXME|XXX|HACK)\b\s*:?\s*(.*)`)

var commentOpenerPattern = regexp.MustCompile(`^\s*(?://|#|/\*+|\*+/?)\s*`)

// genericTodoWords is the authoritative generic-word set; a TODO
// whose remaining text is built entirely from these tokens (plus
// punctuation) is hollow.
var genericTodoWords = map[string]bool{
	"implement": true, "fix": true, "this": true, "later": true,
	"add": true, "here": true, "me": true, "something": true,
	"properly": true,
}

var referenceTokenPattern = regexp.MustCompile(`(?i)RFC-\d+|#\d+|@\w+`)
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)
var punctPattern = regexp.MustCompile(`^[\s.,!:;\-]*$`)

// classifyTodoText determines whether a TODO/FIXME/XXX/HACK comment's
// text (after the marker and optional colon) is hollow: empty, or
// built solely from the generic word set (plus punctuation) with no
// reference token.
func classifyTodoText(commentText string) (marker string, hollow bool) {
	trimmed := commentOpenerPattern.ReplaceAllString(commentText, "")
	trimmed = strings.TrimSuffix(trimmed, "*/")
	trimmed = strings.TrimSpace(trimmed)

	m := todoMarkerPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	marker = strings.ToUpper(m[1])
	rest := strings.TrimSpace(m[2])

	if rest == "" || punctPattern.MatchString(rest) {
		return marker, true
	}
	if referenceTokenPattern.MatchString(rest) {
		return marker, false
	}

	words := wordPattern.FindAllString(strings.ToLower(rest), -1)
	contentWords := 0
	for _, w := range words {
		if !genericTodoWords[w] {
			contentWords++
		}
	}
	return marker, contentWords == 0
}

// extractTodos scans raw source text for marker comments, independent
// of the parse tree: only text matched by commentPattern is searched
// for a marker, so bare words outside comments are skipped.
func extractTodos(pf *model.ParsedFile) {
	for _, m := range commentPattern.FindAllStringIndex(string(pf.Source), -1) {
		text := string(pf.Source[m[0]:m[1]])
		if !todoMarkerPattern.MatchString(text) {
			continue
		}
		_, hollow := classifyTodoText(text)
		pf.Todos = append(pf.Todos, model.Todo{
			Text:     strings.TrimSpace(text),
			Line:     pf.Line(m[0]),
			IsHollow: hollow,
		})
	}
}
