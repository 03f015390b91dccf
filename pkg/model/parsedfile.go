package model

// ParsedFile holds everything the syntax analyzer extracted from one
// source file. Once constructed it is read-only for the remainder of
// analysis; the Fact Store owns the slice of these for the run.
type ParsedFile struct {
	AbsPath     string
	RelPath     string
	Language    string
	Source      []byte
	LineOffsets []int // byte offset of the start of each line

	Declarations []Declaration
	Imports      []Import
	Todos        []Todo

	TotalLineCount int
	FunctionCount  int
	MethodCountsByClass map[string]int

	// ParseWarning carries a recovered-parse diagnostic. Empty when
	// the file parsed cleanly.
	ParseWarning string
}

// Line returns the 1-indexed source line containing the given byte offset.
func (p *ParsedFile) Line(byteOffset int) int {
	// LineOffsets[i] is the byte offset where line i+1 begins.
	lo, hi := 0, len(p.LineOffsets)-1
	line := 1
	for lo <= hi {
		mid := (lo + hi) / 2
		if p.LineOffsets[mid] <= byteOffset {
			line = mid + 1
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return line
}

// FindDeclaration returns the first declaration matching name and kind,
// or nil if none match.
func (p *ParsedFile) FindDeclaration(name string, kind Kind) *Declaration {
	for i := range p.Declarations {
		d := &p.Declarations[i]
		if d.Name == name && kindMatches(d.Kind, kind) {
			return d
		}
	}
	return nil
}

// kindMatches implements the "type matches struct/class/interface/
// trait/enum/alias" rule: a request for KindType is satisfied by any
// type-shaped declaration kind.
func kindMatches(have, want Kind) bool {
	if have == want {
		return true
	}
	if want == KindType {
		return have == KindType || have == KindInterface || have == KindEnum
	}
	return false
}
