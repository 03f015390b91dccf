package depverify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestCollectSites_FiltersStdlibAndAllowlist(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath:  "app.py",
		Language: "python",
		Imports: []model.Import{
			{ModulePath: "os", Line: 1},
			{ModulePath: "acme_internal_tools", Line: 2},
			{ModulePath: "requests", Line: 3},
		},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)

	v := &Verifier{cfg: model.DependencyConfig{Allowlist: []string{"acme_*"}}}
	sites := v.collectSites(store)
	require.Len(t, sites, 1)
	assert.Equal(t, "requests", sites[0].raw)
}

func TestCollectSites_UnprobedLanguageSkipped(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath:  "Main.java",
		Language: "java",
		Imports:  []model.Import{{ModulePath: "com.example.Widget", Line: 1}},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)

	v := &Verifier{}
	assert.Empty(t, v.collectSites(store), "java has no registry")
}

func TestCollectSites_DisabledRegistrySkipped(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath:  "app.py",
		Language: "python",
		Imports:  []model.Import{{ModulePath: "requests", Line: 1}},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)

	v := &Verifier{cfg: model.DependencyConfig{EnabledRegistries: map[string]bool{"npm": true}}}
	assert.Empty(t, v.collectSites(store), "pypi disabled")
}
