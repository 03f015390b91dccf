package langs

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// computeComplexity is cyclomatic complexity, McCabe style: 1 +
// decision points within body, including nested. Each node whose type
// is in spec.decisionNodeTypes counts once; each logical operator
// counts once, through its binary-expression node when the operator
// field matches, otherwise through the operator token node itself;
// "default"/"else" arms never add.
func computeComplexity(spec *langSpec, body *sitter.Node, source []byte) int {
	if body == nil {
		return 1
	}
	count := 0
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		t := n.Type()
		if spec.decisionNodeTypes[t] {
			count++
		}
		if spec.logicalOperatorTypes[t] {
			// The operator token of a binary expression was already
			// counted with its parent node.
			if p := n.Parent(); p == nil || !isLogicalOperatorNode(spec, p, source) {
				count++
			}
		} else if isLogicalOperatorNode(spec, n, source) {
			count++
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(body)
	return count + 1
}

// isLogicalOperatorNode handles languages (Go, Rust, C-family) where
// && / || appear as an operator token inside a binary_expression node
// rather than as their own node type.
func isLogicalOperatorNode(spec *langSpec, n *sitter.Node, source []byte) bool {
	switch n.Type() {
	case "binary_expression", "binary_operator":
		op := n.ChildByFieldName("operator")
		if op == nil {
			return false
		}
		text := nodeText(op, source)
		return spec.logicalOperatorTypes[text]
	default:
		return false
	}
}
