package langs

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// treeSitterAnalyzer drives a langSpec over the shared tree-sitter
// parse-and-walk engine. It is the only Analyzer implementation for
// every grammar-backed language; the per-language behavior lives
// entirely in the langSpec table, so adding a language never means
// adding another Analyzer type.
type treeSitterAnalyzer struct {
	spec *langSpec
}

func newTreeSitterAnalyzer(spec *langSpec) Analyzer {
	return &treeSitterAnalyzer{spec: spec}
}

func (a *treeSitterAnalyzer) Name() string { return a.spec.name }

func (a *treeSitterAnalyzer) Parse(absPath, relPath string, source []byte) (*model.ParsedFile, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(a.spec.language())

	pf := &model.ParsedFile{
		AbsPath:             absPath,
		RelPath:             relPath,
		Language:            a.spec.name,
		Source:              source,
		LineOffsets:         lineOffsets(source),
		MethodCountsByClass: make(map[string]int),
	}
	pf.TotalLineCount = len(pf.LineOffsets)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		pf.ParseWarning = fmt.Sprintf("parse error: %v", err)
		return pf, nil
	}
	if tree == nil {
		pf.ParseWarning = "parse returned no tree"
		return pf, nil
	}
	root := tree.RootNode()
	if root.HasError() {
		pf.ParseWarning = "source contains syntax errors; results are best-effort"
	}

	w := &walker{spec: a.spec, source: source, pf: pf}
	w.walk(root, "", false)

	extractTodos(pf)

	return pf, nil
}

type walker struct {
	spec   *langSpec
	source []byte
	pf     *model.ParsedFile
}

func (w *walker) walk(n *sitter.Node, enclosingClass string, inInterface bool) {
	if n == nil {
		return
	}

	t := n.Type()
	kind, isDecl := w.spec.declNodeTypes[t]

	if !isDecl {
		for i := 0; i < int(n.ChildCount()); i++ {
			w.walk(n.Child(i), enclosingClass, inInterface)
		}
		w.tryImport(n)
		return
	}

	name := w.declName(n)

	switch kind {
	case model.KindFunction, model.KindMethod:
		effectiveClass := enclosingClass
		if w.spec.enclosingClassFunc != nil {
			effectiveClass = w.spec.enclosingClassFunc(n, w.source)
		}
		effectiveKind := kind
		if effectiveClass != "" {
			effectiveKind = model.KindMethod
		}
		w.emitExecutable(n, effectiveKind, name, effectiveClass, inInterface)
		// Functions/methods don't nest further declarations of
		// interest for our purposes, but still walk for correctness
		// (e.g. nested closures in JS aren't tracked as declarations).
		for i := 0; i < int(n.ChildCount()); i++ {
			w.walk(n.Child(i), enclosingClass, inInterface)
		}
	default:
		// Type-shaped declaration: emit it, then descend with this
		// name pushed as the enclosing class for nested members.
		w.pf.Declarations = append(w.pf.Declarations, model.Declaration{
			Name:      name,
			Kind:      kind,
			StartLine: int(n.StartPoint().Row) + 1,
			EndLine:   int(n.EndPoint().Row) + 1,
			ByteSpan:  model.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
			Complexity: 1,
		})
		childInterface := w.spec.interfaceParents[t]
		for i := 0; i < int(n.ChildCount()); i++ {
			w.walk(n.Child(i), name, childInterface)
		}
	}
}

func (w *walker) declName(n *sitter.Node) string {
	if w.spec.nameFunc != nil {
		if name := w.spec.nameFunc(n, w.source); name != "" {
			return name
		}
	}
	return nodeText(n.ChildByFieldName("name"), w.source)
}

func (w *walker) bodyNode(n *sitter.Node) *sitter.Node {
	if w.spec.bodyFunc != nil {
		return w.spec.bodyFunc(n)
	}
	if b := n.ChildByFieldName("body"); b != nil {
		return b
	}
	return n.ChildByFieldName("block")
}

func (w *walker) emitExecutable(n *sitter.Node, kind model.Kind, name, enclosingClass string, inInterface bool) {
	body := w.bodyNode(n)

	d := model.Declaration{
		Name:              name,
		Kind:              kind,
		StartLine:         int(n.StartPoint().Row) + 1,
		EndLine:           int(n.EndPoint().Row) + 1,
		ByteSpan:          model.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
		EnclosingClass:    enclosingClass,
		IsInterfaceMember: inInterface,
	}

	if body == nil {
		d.Complexity = 1
		d.IsEmptyBody = true
		if !inInterface {
			d.IsStub = true
			d.StubClass = model.StubEmpty
		} else {
			d.StubClass = model.StubNone
		}
	} else {
		span := model.Span{Start: int(body.StartByte()), End: int(body.EndByte())}
		d.BodySpan = &span
		d.Complexity = computeComplexity(w.spec, body, w.source)
		bodyText := nodeText(body, w.source)
		if inInterface {
			d.StubClass = model.StubNone
		} else {
			isStub, class := classifyStub(bodyText)
			d.IsStub = isStub
			d.StubClass = class
			d.IsEmptyBody = class == model.StubEmpty
		}
	}

	w.pf.Declarations = append(w.pf.Declarations, d)
	w.pf.FunctionCount++
	if enclosingClass != "" {
		w.pf.MethodCountsByClass[enclosingClass]++
	}
}

func (w *walker) tryImport(n *sitter.Node) {
	t := n.Type()
	for _, it := range w.spec.importNodeTypes {
		if it == t {
			if w.spec.importFunc == nil {
				return
			}
			for _, path := range w.spec.importFunc(n, w.source) {
				if path == "" || isRelativeImport(path) {
					continue
				}
				w.pf.Imports = append(w.pf.Imports, model.Import{
					ModulePath: path,
					Line:       int(n.StartPoint().Row) + 1,
				})
			}
			return
		}
	}
}

func isRelativeImport(path string) bool {
	if len(path) == 0 {
		return false
	}
	if path[0] == '.' {
		return true
	}
	for i := 0; i+2 < len(path); i++ {
		if path[i] == '.' && path[i+1] == '.' && path[i+2] == '/' {
			return true
		}
	}
	return false
}

func lineOffsets(source []byte) []int {
	offsets := []int{0}
	for i, b := range source {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
