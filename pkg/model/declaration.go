package model

// Kind classifies a declaration extracted from source.
type Kind string

const (
	KindFunction  Kind = "function"
	KindMethod    Kind = "method"
	KindType      Kind = "type"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindConst     Kind = "const"
)

// StubClass classifies the body of a stub declaration.
type StubClass string

const (
	StubNone        StubClass = "not_stub"
	StubEmpty       StubClass = "empty"
	StubPanicOnly   StubClass = "panic_only"
	StubNullReturn  StubClass = "null_return_only"
	StubTodoOnly    StubClass = "todo_only"
)

// Span marks a byte range within a file's source bytes.
type Span struct {
	Start int
	End   int
}

// Declaration is a single named declaration extracted from a source file.
type Declaration struct {
	Name           string
	Kind           Kind
	StartLine      int
	EndLine        int
	ByteSpan       Span
	BodySpan       *Span // nil for types with no body
	Complexity     int   // >= 1 for functions/methods; 1 for non-executable declarations
	IsEmptyBody    bool
	IsStub         bool
	StubClass      StubClass
	EnclosingClass string // empty if top-level
	IsInterfaceMember bool // true for abstract/interface method signatures
}

// Import is a single import/use statement extracted from a source file.
type Import struct {
	ModulePath string
	Line       int
}

// Todo is a comment matching the hollow-TODO marker pattern.
type Todo struct {
	Text     string
	Line     int
	IsHollow bool
}
