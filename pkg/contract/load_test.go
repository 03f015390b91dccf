package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestLoadBytes_Defaults(t *testing.T) {
	c, err := LoadBytes([]byte(`{}`), "inline")
	require.NoError(t, err)
	assert.Equal(t, 25, c.Threshold)
	assert.True(t, c.GodObjects.Enabled, "expected god object detector enabled by default")
	assert.Equal(t, 8, c.Dependencies.MaxInFlight)
}

func TestLoadBytes_RequiredSymbols(t *testing.T) {
	yml := []byte(`
required_symbols:
  - name: HandleRequest
    kind: function
    file: server.go
  - name: Widget
    kind: interface
`)
	c, err := LoadBytes(yml, "inline")
	require.NoError(t, err)
	require.Len(t, c.RequiredSymbols, 2)
	assert.Equal(t, model.KindFunction, c.RequiredSymbols[0].Kind)
	assert.Equal(t, model.KindInterface, c.RequiredSymbols[1].Kind)
}

func TestLoadBytes_ForbiddenPatternCompiles(t *testing.T) {
	yml := []byte(`
forbidden_patterns:
  - pattern: "eval\\("
    description: "no dynamic eval"
`)
	c, err := LoadBytes(yml, "inline")
	require.NoError(t, err)
	require.Len(t, c.ForbiddenPatterns, 1)
	assert.True(t, c.ForbiddenPatterns[0].Regex.MatchString("eval(userInput)"), "expected compiled pattern to match eval( call")
}

func TestLoadBytes_InvalidPatternErrors(t *testing.T) {
	yml := []byte(`
forbidden_patterns:
  - pattern: "("
    description: "broken"
`)
	_, err := LoadBytes(yml, "inline")
	assert.Error(t, err)
}

func TestLoadBytes_UnknownRegistryErrors(t *testing.T) {
	yml := []byte(`
dependencies:
  enabled_registries: ["nuget"]
`)
	_, err := LoadBytes(yml, "inline")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/contract.yaml")
	assert.Error(t, err)
}

func TestLoadBytes_ThresholdOutOfRange(t *testing.T) {
	yml := []byte(`threshold: 150`)
	_, err := LoadBytes(yml, "inline")
	assert.Error(t, err)
}
