package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestMissingTest_FoundInDeclaredFile(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath: "auth_test.go",
		Declarations: []model.Declaration{
			{Name: "TestLogin", Kind: model.KindFunction},
		},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)
	c := &model.Contract{RequiredTests: []model.RequiredTest{{Name: "TestLogin", File: "auth_test.go"}}}

	assert.Empty(t, missingTest(store, c))
}

func TestMissingTest_DeclaredFileMissingSymbol(t *testing.T) {
	pf := &model.ParsedFile{RelPath: "auth_test.go"}
	store := facts.New([]*model.ParsedFile{pf}, nil)
	c := &model.Contract{RequiredTests: []model.RequiredTest{{Name: "TestLogin", File: "auth_test.go"}}}

	findings := missingTest(store, c)
	if assert.Len(t, findings, 1) {
		assert.Equal(t, model.RuleMissingTest, findings[0].Rule)
		assert.Equal(t, 5, findings[0].Points)
		assert.Equal(t, "auth_test.go", findings[0].File)
	}
}

func TestMissingTest_DeclaredFileAbsent(t *testing.T) {
	store := facts.New(nil, nil)
	c := &model.Contract{RequiredTests: []model.RequiredTest{{Name: "TestLogin", File: "auth_test.go"}}}

	findings := missingTest(store, c)
	assert.Len(t, findings, 1)
}

func TestMissingTest_NoFileSearchesAnyTestFile(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath: "widget_test.go",
		Declarations: []model.Declaration{
			{Name: "TestWidget", Kind: model.KindFunction},
		},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)
	c := &model.Contract{RequiredTests: []model.RequiredTest{{Name: "TestWidget"}}}

	assert.Empty(t, missingTest(store, c))
}

func TestMissingTest_NoFileIgnoresNonTestFiles(t *testing.T) {
	pf := &model.ParsedFile{
		RelPath: "widget.go",
		Declarations: []model.Declaration{
			{Name: "TestWidget", Kind: model.KindFunction},
		},
	}
	store := facts.New([]*model.ParsedFile{pf}, nil)
	c := &model.Contract{RequiredTests: []model.RequiredTest{{Name: "TestWidget"}}}

	assert.Len(t, missingTest(store, c), 1, "a declaration in a non-test file must not satisfy a required test")
}
