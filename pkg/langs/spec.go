package langs

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// langSpec is the per-language table the generic tree-sitter analyzer
// is driven by: tree queries are data, not code — the walking engine
// in treesitter.go is identical across languages, only this table
// differs.
type langSpec struct {
	name     string
	language func() *sitter.Language

	// declNodeTypes maps a tree-sitter node type to the Declaration
	// Kind it represents. A node type absent from this map is not a
	// declaration boundary (but may still be walked through).
	declNodeTypes map[string]model.Kind

	// interfaceParents are node types whose immediate children
	// (method signatures without bodies) should be marked
	// IsInterfaceMember rather than evaluated as stubs.
	interfaceParents map[string]bool

	// nameFunc extracts the declaration name from a node of a kind
	// present in declNodeTypes. Defaults to ChildByFieldName("name")
	// when nil.
	nameFunc func(n *sitter.Node, source []byte) string

	// bodyFunc locates the executable body of a declaration node.
	// Defaults to ChildByFieldName("body") when nil.
	bodyFunc func(n *sitter.Node) *sitter.Node

	// enclosingClassTypes are node types that, when an ancestor of a
	// function/method, supply EnclosingClass (via their own name).
	enclosingClassTypes map[string]bool

	// enclosingClassFunc overrides nesting-based EnclosingClass
	// resolution for languages that express method membership
	// through a signature element instead of lexical nesting (Go's
	// receiver parameter). Nil means "use lexical nesting".
	enclosingClassFunc func(n *sitter.Node, source []byte) string

	// importNodeTypes are node types representing one or more import
	// statements.
	importNodeTypes []string
	// importFunc extracts zero or more flattened module paths from an
	// import node (handles Go/Rust grouped imports).
	importFunc func(n *sitter.Node, source []byte) []string

	// decisionNodeTypes count as one decision point each, regardless
	// of content (if/for/while/case arms/catch clauses/ternary).
	decisionNodeTypes map[string]bool
	// logicalOperatorTypes are the logical operator tokens (&& / ||,
	// and/or) that count as one decision point per occurrence, matched
	// as token node types or as a binary expression's operator text.
	logicalOperatorTypes map[string]bool

	// commentNodeTypes are node types holding comment text, used by
	// the Hollow TODO extractor and stub todo_only classification.
	commentNodeTypes map[string]bool

	// hasTernary/hasTryCatch record per-language caveats (Go and Rust
	// have no ternary expression node at all).
	hasTernary  bool
	hasTryCatch bool
}

func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if start > end || int(end) > len(source) {
		return ""
	}
	return string(source[start:end])
}
