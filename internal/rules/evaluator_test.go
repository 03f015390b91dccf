package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/contract"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// TestScenario_S1 covers a stub function satisfying a required_symbols
// entry, plus a forbidden "TODO" pattern that does not appear in the
// file, yielding exactly one stub_function finding.
func TestScenario_S1(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath: "stub.go",
		Source:  []byte(`func HandleRequest() error { panic("not implemented") }`),
		Declarations: []model.Declaration{
			{Name: "HandleRequest", Kind: model.KindFunction, StartLine: 1, EndLine: 1, IsStub: true, StubClass: model.StubPanicOnly, Complexity: 1},
		},
	}
	store := facts.New([]*model.ParsedFile{pf}, []string{"stub.go"})

	c, err := contract.LoadBytes([]byte(`
required_symbols:
  - name: HandleRequest
    kind: function
    file: stub.go
forbidden_patterns:
  - pattern: "TODO"
    description: "no leftover todos"
`), "inline")
	require.NoError(t, err)

	findings := Evaluate(store, c)
	SortFindings(findings)

	require.Len(t, findings, 1)
	assert.Equal(t, model.RuleStubFunction, findings[0].Rule)
	assert.Equal(t, 10, findings[0].Points)
}

// TestScenario_S6 covers three required files: one present, one
// missing+required, one missing+optional.
func TestScenario_S6(t *testing.T) {
	store := facts.New(nil, []string{"main.go"})

	c, err := contract.LoadBytes([]byte(`
required_files:
  - path: main.go
    required: true
  - path: README.md
    required: true
  - path: CHANGELOG.md
    required: false
`), "inline")
	require.NoError(t, err)

	findings := Evaluate(store, c)
	SortFindings(findings)

	require.Len(t, findings, 2)

	total := 0
	for _, f := range findings {
		total += f.Points
	}
	assert.Equal(t, 25, total)
}

func TestGodObject_FileLineCount(t *testing.T) {
	pf := &model.ParsedFile{RelPath: "big.go", TotalLineCount: 600}
	store := facts.New([]*model.ParsedFile{pf}, nil)

	c, err := contract.LoadBytes([]byte(`
god_objects:
  enabled: true
  max_file_lines: 500
`), "inline")
	require.NoError(t, err)

	findings := Evaluate(store, c)
	require.Len(t, findings, 1)
	assert.Equal(t, model.RuleGodObject, findings[0].Rule)
	assert.Equal(t, 8, findings[0].Points)
}

func TestMissingSymbol_NoFile(t *testing.T) {
	store := facts.New(nil, nil)

	c, err := contract.LoadBytes([]byte(`
required_symbols:
  - name: Widget
    kind: interface
    file: widget.go
`), "inline")
	require.NoError(t, err)

	findings := Evaluate(store, c)
	require.Len(t, findings, 1)
	assert.Equal(t, model.RuleMissingSymbol, findings[0].Rule)
	assert.Equal(t, 15, findings[0].Points)
}
