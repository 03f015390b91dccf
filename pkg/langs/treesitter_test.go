package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestGoAnalyzer_StubFunction(t *testing.T) {
	src := []byte(`package main

import "fmt"

func HandleRequest() error {
	panic("not implemented")
}

func Add(a, b int) int {
	if a > b {
		return a
	}
	return b
}
`)
	a := newTreeSitterAnalyzer(goSpec)
	pf, err := a.Parse("/abs/stub.go", "stub.go", src)
	require.NoError(t, err)
	require.Empty(t, pf.ParseWarning)

	handle := pf.FindDeclaration("HandleRequest", model.KindFunction)
	require.NotNil(t, handle, "expected to find HandleRequest")
	assert.True(t, handle.IsStub)
	assert.Equal(t, model.StubPanicOnly, handle.StubClass)

	add := pf.FindDeclaration("Add", model.KindFunction)
	require.NotNil(t, add, "expected to find Add")
	assert.False(t, add.IsStub, "Add should not be classified as a stub")
	assert.GreaterOrEqual(t, add.Complexity, 2, "Add complexity (one if)")

	foundFmt := false
	for _, imp := range pf.Imports {
		if imp.ModulePath == "fmt" {
			foundFmt = true
		}
	}
	assert.True(t, foundFmt, "expected fmt import, got %v", pf.Imports)
}

func TestGoAnalyzer_SwitchDefaultDoesNotAddComplexity(t *testing.T) {
	src := []byte(`package main

func Classify(x int) string {
	switch x {
	case 1:
		return "one"
	case 2:
		return "two"
	default:
		return "other"
	}
}
`)
	a := newTreeSitterAnalyzer(goSpec)
	pf, err := a.Parse("/abs/classify.go", "classify.go", src)
	require.NoError(t, err)
	fn := pf.FindDeclaration("Classify", model.KindFunction)
	require.NotNil(t, fn, "expected to find Classify")
	// 1 (base) + 2 case arms; the default: arm must not add a third.
	assert.Equal(t, 3, fn.Complexity, "default arm must not count")
}

func TestGoAnalyzer_GodObjectClassMethodCount(t *testing.T) {
	src := []byte(`package main

type Server struct{}

func (s *Server) A() {}
func (s *Server) B() {}
`)
	a := newTreeSitterAnalyzer(goSpec)
	pf, err := a.Parse("/abs/server.go", "server.go", src)
	require.NoError(t, err)
	assert.Equal(t, 2, pf.MethodCountsByClass["Server"])
}
