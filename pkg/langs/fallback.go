package langs

import (
	"regexp"
	"strings"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// lineSpec drives lineAnalyzer, the brace-balanced fallback used for
// languages with no available tree-sitter grammar (Scala, Swift). It
// still implements the full Analyzer capability set, at reduced
// fidelity: declarations and complexity are found by scanning matched
// braces rather than a real parse tree, and imports are left empty.
type lineSpec struct {
	name            string
	funcPattern     *regexp.Regexp
	typePattern     *regexp.Regexp
	decisionPattern *regexp.Regexp
}

var scalaLineSpec = &lineSpec{
	name:        "scala",
	funcPattern: regexp.MustCompile(`\bdef\s+([A-Za-z_][A-Za-z0-9_]*)\s*[(\[]`),
	typePattern: regexp.MustCompile(`\b(?:class|object|trait)\s+([A-Za-z_][A-Za-z0-9_]*)`),
	decisionPattern: regexp.MustCompile(
		`\bif\b|\bfor\b|\bwhile\b|\bcase\b|\bcatch\b|&&|\|\||\?\?\?`,
	),
}

var swiftLineSpec = &lineSpec{
	name:        "swift",
	funcPattern: regexp.MustCompile(`\bfunc\s+([A-Za-z_][A-Za-z0-9_]*)\s*[(<]`),
	typePattern: regexp.MustCompile(`\b(?:class|struct|enum|protocol)\s+([A-Za-z_][A-Za-z0-9_]*)`),
	decisionPattern: regexp.MustCompile(
		`\bif\b|\bfor\b|\bwhile\b|\bcase\b|\bcatch\b|&&|\|\||\?`,
	),
}

type lineAnalyzer struct {
	spec *lineSpec
}

func newLineAnalyzer(spec *lineSpec) Analyzer {
	return &lineAnalyzer{spec: spec}
}

func (a *lineAnalyzer) Name() string { return a.spec.name }

func (a *lineAnalyzer) Parse(absPath, relPath string, source []byte) (*model.ParsedFile, error) {
	pf := &model.ParsedFile{
		AbsPath:             absPath,
		RelPath:             relPath,
		Language:            a.spec.name,
		Source:              source,
		LineOffsets:         lineOffsets(source),
		MethodCountsByClass: make(map[string]int),
	}
	pf.TotalLineCount = len(pf.LineOffsets)

	var classStack []string

	for _, m := range a.spec.typePattern.FindAllSubmatchIndex(source, -1) {
		name := string(source[m[2]:m[3]])
		start := m[0]
		end := matchBraceEnd(source, start)
		pf.Declarations = append(pf.Declarations, model.Declaration{
			Name:       name,
			Kind:       model.KindType,
			StartLine:  pf.Line(start),
			EndLine:    pf.Line(end),
			ByteSpan:   model.Span{Start: start, End: end},
			Complexity: 1,
		})
		classStack = append(classStack, name)
	}

	for _, m := range a.spec.funcPattern.FindAllSubmatchIndex(source, -1) {
		name := string(source[m[2]:m[3]])
		start := m[0]
		bodyStart := indexByte(source, '{', m[1])
		end := m[1]
		enclosing := enclosingClassFor(pf.Declarations, start)

		d := model.Declaration{
			Name:           name,
			Kind:           model.KindFunction,
			StartLine:      pf.Line(start),
			EnclosingClass: enclosing,
		}
		if enclosing != "" {
			d.Kind = model.KindMethod
		}

		if bodyStart < 0 {
			d.Complexity = 1
			d.IsEmptyBody = true
			d.IsStub = true
			d.StubClass = model.StubEmpty
		} else {
			bodyEnd := matchBraceEnd(source, bodyStart)
			end = bodyEnd
			span := model.Span{Start: bodyStart, End: bodyEnd}
			d.BodySpan = &span
			bodyText := string(source[bodyStart:bodyEnd])
			d.Complexity = 1 + len(a.spec.decisionPattern.FindAllString(bodyText, -1))
			isStub, class := classifyStub(bodyText)
			d.IsStub = isStub
			d.StubClass = class
			d.IsEmptyBody = class == model.StubEmpty
		}
		d.EndLine = pf.Line(end)
		d.ByteSpan = model.Span{Start: start, End: end}

		pf.Declarations = append(pf.Declarations, d)
		pf.FunctionCount++
		if enclosing != "" {
			pf.MethodCountsByClass[enclosing]++
		}
	}

	extractTodos(pf)
	return pf, nil
}

// matchBraceEnd returns the byte offset just past the closing '{'...'}'
// pair starting at or after from. Returns len(source) if unbalanced.
func matchBraceEnd(source []byte, from int) int {
	start := indexByte(source, '{', from)
	if start < 0 {
		return len(source)
	}
	depth := 0
	for i := start; i < len(source); i++ {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(source)
}

func indexByte(source []byte, b byte, from int) int {
	if from < 0 || from > len(source) {
		return -1
	}
	idx := strings.IndexByte(string(source[from:]), b)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func enclosingClassFor(decls []model.Declaration, pos int) string {
	best := ""
	bestStart := -1
	for _, d := range decls {
		if d.Kind != model.KindType {
			continue
		}
		if d.ByteSpan.Start <= pos && pos < d.ByteSpan.End && d.ByteSpan.Start > bestStart {
			best = d.Name
			bestStart = d.ByteSpan.Start
		}
	}
	return best
}
