package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hollowcheck/hollowcheck/internal/herrors"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Load reads, parses, and validates a contract file at path, returning
// a compiled model.Contract ready for the Rule Evaluator: koanf over a
// single file.Provider, with the parser chosen by extension, unmarshaled
// onto a struct pre-seeded with defaults.
func Load(path string) (*model.Contract, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, herrors.Input("contract.Load", path, err)
	}

	k := koanf.New(".")
	doc := defaultDocument()

	if err := k.Load(file.Provider(path), parserForExt(path)); err != nil {
		return nil, herrors.Input("contract.Load", path, fmt.Errorf("parse: %w", err))
	}
	if err := k.Unmarshal("", doc); err != nil {
		return nil, herrors.Contract("contract.Load", path, fmt.Errorf("unmarshal: %w", err))
	}

	return compile(doc, path)
}

// parserForExt chooses a koanf parser by extension: yaml/yml and json
// get their own parser, everything else (including a bare .toml
// contract) falls back to TOML.
func parserForExt(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".json":
		return json.Parser()
	default:
		return toml.Parser()
	}
}

// LoadBytes parses contract YAML already in memory, for callers (tests,
// the CLI's built-in empty contract) that don't have it on disk.
func LoadBytes(data []byte, sourceName string) (*model.Contract, error) {
	k := koanf.New(".")
	doc := defaultDocument()

	if err := k.Load(rawProvider{data}, yaml.Parser()); err != nil {
		return nil, herrors.Input("contract.LoadBytes", sourceName, fmt.Errorf("parse yaml: %w", err))
	}
	if err := k.Unmarshal("", doc); err != nil {
		return nil, herrors.Contract("contract.LoadBytes", sourceName, fmt.Errorf("unmarshal: %w", err))
	}

	return compile(doc, sourceName)
}

// rawProvider adapts an in-memory byte slice to koanf's Provider
// interface so LoadBytes can reuse the same parser path as Load.
type rawProvider struct{ data []byte }

func (r rawProvider) ReadBytes() ([]byte, error) { return r.data, nil }
func (r rawProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("rawProvider: structured Read unsupported, use ReadBytes")
}
