package langs

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func decisionSet(types ...string) map[string]bool {
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

var goSpec = &langSpec{
	name:     "go",
	language: golang.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_declaration": model.KindFunction,
		"method_declaration":   model.KindMethod,
		"type_declaration":     model.KindType,
		"const_declaration":    model.KindConst,
	},
	enclosingClassFunc: goReceiverClass,
	nameFunc:           goDeclName,
	importNodeTypes:    []string{"import_declaration"},
	importFunc:         goImports,
	decisionNodeTypes: decisionSet(
		"if_statement", "for_statement", "expression_case",
		"communication_case", "type_case",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           false,
	hasTryCatch:          false,
}

var rustSpec = &langSpec{
	name:     "rust",
	language: rust.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_item": model.KindFunction,
		"struct_item":   model.KindType,
		"enum_item":     model.KindEnum,
		"trait_item":    model.KindInterface,
		"const_item":    model.KindConst,
	},
	enclosingClassTypes: map[string]bool{"impl_item": true, "trait_item": true},
	importNodeTypes:     []string{"use_declaration"},
	importFunc:          rustImports,
	decisionNodeTypes: decisionSet(
		"if_expression", "if_let_expression", "for_expression", "while_expression",
		"while_let_expression", "match_arm", "loop_expression",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("line_comment", "block_comment"),
	hasTernary:           false,
	hasTryCatch:          false,
}

var pythonSpec = &langSpec{
	name:     "python",
	language: python.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_definition": model.KindFunction,
		"class_definition":    model.KindType,
	},
	enclosingClassTypes: map[string]bool{"class_definition": true},
	importNodeTypes:     []string{"import_statement", "import_from_statement"},
	importFunc:          pythonImports,
	decisionNodeTypes: decisionSet(
		"if_statement", "elif_clause", "for_statement", "while_statement",
		"except_clause", "conditional_expression", "list_comprehension",
		"set_comprehension", "dictionary_comprehension", "generator_expression",
		"match_statement",
	),
	logicalOperatorTypes: decisionSet("and", "or"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           true,
	hasTryCatch:          true,
}

var javaSpec = &langSpec{
	name:     "java",
	language: java.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"method_declaration":      model.KindMethod,
		"constructor_declaration": model.KindMethod,
		"class_declaration":       model.KindType,
		"interface_declaration":   model.KindInterface,
		"enum_declaration":        model.KindEnum,
	},
	interfaceParents:    map[string]bool{"interface_declaration": true},
	enclosingClassTypes: map[string]bool{"class_declaration": true, "interface_declaration": true, "enum_declaration": true},
	decisionNodeTypes: decisionSet(
		"if_statement", "for_statement", "enhanced_for_statement", "while_statement",
		"do_statement", "switch_label", "catch_clause", "ternary_expression",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("line_comment", "block_comment"),
	hasTernary:           true,
	hasTryCatch:          true,
}

func tsBaseSpec() *langSpec {
	return &langSpec{
		declNodeTypes: map[string]model.Kind{
			"function_declaration": model.KindFunction,
			"method_definition":    model.KindMethod,
			"class_declaration":    model.KindType,
			"interface_declaration": model.KindInterface,
		},
		interfaceParents:    map[string]bool{"interface_declaration": true},
		enclosingClassTypes: map[string]bool{"class_declaration": true},
		importNodeTypes:     []string{"import_statement"},
		importFunc:          jsImports,
		decisionNodeTypes: decisionSet(
			"if_statement", "for_statement", "for_in_statement", "while_statement",
			"do_statement", "switch_case", "catch_clause", "ternary_expression",
		),
		logicalOperatorTypes: decisionSet("&&", "||"),
		commentNodeTypes:     decisionSet("comment"),
		hasTernary:           true,
		hasTryCatch:          true,
	}
}

var typescriptSpec = func() *langSpec {
	s := tsBaseSpec()
	s.name = "typescript"
	s.language = typescript.GetLanguage
	return s
}()

var tsxSpec = func() *langSpec {
	s := tsBaseSpec()
	s.name = "tsx"
	s.language = tsx.GetLanguage
	return s
}()

var javascriptSpec = func() *langSpec {
	s := tsBaseSpec()
	s.name = "javascript"
	s.language = javascript.GetLanguage
	return s
}()

var cSpec = &langSpec{
	name:     "c",
	language: c.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_definition": model.KindFunction,
		"struct_specifier":    model.KindType,
		"enum_specifier":      model.KindEnum,
	},
	nameFunc: cFunctionName,
	decisionNodeTypes: decisionSet(
		"if_statement", "for_statement", "while_statement", "do_statement",
		"case_statement",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           true,
	hasTryCatch:          false,
}

var cppSpec = &langSpec{
	name:     "cpp",
	language: cpp.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_definition": model.KindFunction,
		"class_specifier":     model.KindType,
		"struct_specifier":    model.KindType,
		"enum_specifier":      model.KindEnum,
	},
	nameFunc:            cFunctionName,
	enclosingClassTypes: map[string]bool{"class_specifier": true, "struct_specifier": true},
	decisionNodeTypes: decisionSet(
		"if_statement", "for_statement", "while_statement", "do_statement",
		"case_statement", "catch_clause", "conditional_expression",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           true,
	hasTryCatch:          true,
}

var rubySpec = &langSpec{
	name:     "ruby",
	language: ruby.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"method":           model.KindMethod,
		"singleton_method": model.KindMethod,
		"class":            model.KindType,
		"module":           model.KindType,
	},
	enclosingClassTypes: map[string]bool{"class": true, "module": true},
	decisionNodeTypes: decisionSet(
		"if", "elsif", "unless", "for", "while", "until", "when", "rescue",
		"conditional",
	),
	logicalOperatorTypes: decisionSet("&&", "||", "and", "or"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           true,
	hasTryCatch:          true,
}

var phpSpec = &langSpec{
	name:     "php",
	language: php.GetLanguage,
	declNodeTypes: map[string]model.Kind{
		"function_definition": model.KindFunction,
		"method_declaration":  model.KindMethod,
		"class_declaration":   model.KindType,
		"interface_declaration": model.KindInterface,
	},
	interfaceParents:    map[string]bool{"interface_declaration": true},
	enclosingClassTypes: map[string]bool{"class_declaration": true},
	decisionNodeTypes: decisionSet(
		"if_statement", "else_if_clause", "for_statement", "foreach_statement",
		"while_statement", "do_statement", "case_statement", "catch_clause",
		"conditional_expression",
	),
	logicalOperatorTypes: decisionSet("&&", "||"),
	commentNodeTypes:     decisionSet("comment"),
	hasTernary:           true,
	hasTryCatch:          true,
}

// goReceiverClass extracts the receiver type name from a Go
// method_declaration, e.g. "func (s *Server) Handle()" -> "Server".
// Go expresses method membership through the receiver, not lexical
// nesting, so this overrides enclosingClassTypes-based resolution.
func goReceiverClass(n *sitter.Node, source []byte) string {
	receiver := n.ChildByFieldName("receiver")
	if receiver == nil {
		return ""
	}
	var find func(*sitter.Node) string
	find = func(node *sitter.Node) string {
		if node == nil {
			return ""
		}
		if node.Type() == "type_identifier" {
			return nodeText(node, source)
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			if name := find(node.Child(i)); name != "" {
				return name
			}
		}
		return ""
	}
	return find(receiver)
}

// goDeclName handles type_declaration and const_declaration, whose
// name lives on a nested type_spec/const_spec child rather than the
// declaration node itself. function_declaration/method_declaration
// return "" here so the generic ChildByFieldName("name") fallback
// applies.
func goDeclName(n *sitter.Node, source []byte) string {
	switch n.Type() {
	case "type_declaration":
		if spec := n.NamedChild(0); spec != nil {
			return nodeText(spec.ChildByFieldName("name"), source)
		}
	case "const_declaration":
		if spec := n.NamedChild(0); spec != nil {
			return nodeText(spec.ChildByFieldName("name"), source)
		}
	}
	return ""
}

// cFunctionName handles C/C++'s nested declarator name field: the
// identifier sits under a function_declarator, not directly on the
// function_definition node.
func cFunctionName(n *sitter.Node, source []byte) string {
	declNode := n.ChildByFieldName("declarator")
	if declNode == nil {
		return ""
	}
	if inner := declNode.ChildByFieldName("declarator"); inner != nil {
		return nodeText(inner, source)
	}
	return nodeText(declNode, source)
}

func goImports(n *sitter.Node, source []byte) []string {
	var paths []string
	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.Type() == "interpreted_string_literal" {
			raw := nodeText(node, source)
			paths = append(paths, trimQuotes(raw))
			return
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(n)
	return paths
}

func rustImports(n *sitter.Node, source []byte) []string {
	// use_declaration's argument is a use_tree; take the leading
	// identifier/scoped_identifier segment, flattening group braces.
	var paths []string
	arg := n.ChildByFieldName("argument")
	if arg == nil {
		return paths
	}
	var collectLeaf func(*sitter.Node) []string
	collectLeaf = func(node *sitter.Node) []string {
		switch node.Type() {
		case "use_list":
			var out []string
			for i := 0; i < int(node.ChildCount()); i++ {
				out = append(out, collectLeaf(node.Child(i))...)
			}
			return out
		case "scoped_use_list":
			prefix := nodeText(node.ChildByFieldName("path"), source)
			list := node.ChildByFieldName("list")
			var out []string
			if list != nil {
				for _, leaf := range collectLeaf(list) {
					out = append(out, prefix+"::"+leaf)
				}
			}
			return out
		case "identifier", "scoped_identifier", "use_as_clause":
			return []string{nodeText(node, source)}
		default:
			return nil
		}
	}
	paths = append(paths, collectLeaf(arg)...)
	return paths
}

func pythonImports(n *sitter.Node, source []byte) []string {
	var paths []string
	if n.Type() == "import_statement" {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child.Type() == "dotted_name" || child.Type() == "aliased_import" {
				paths = append(paths, nodeText(child, source))
			}
		}
		return paths
	}
	// import_from_statement: module_name is the import root.
	if mod := n.ChildByFieldName("module_name"); mod != nil {
		paths = append(paths, nodeText(mod, source))
	}
	return paths
}

func jsImports(n *sitter.Node, source []byte) []string {
	src := n.ChildByFieldName("source")
	if src == nil {
		return nil
	}
	return []string{trimQuotes(nodeText(src, source))}
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
