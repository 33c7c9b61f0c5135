package prompt

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/scaffold"
)

// scriptedAsker answers by question title and records what was asked.
type scriptedAsker struct {
	inputs   map[string]string
	confirms map[string]bool
	selects  map[string]string
	asked    []string
}

func (a *scriptedAsker) Input(title, def string) (string, error) {
	a.asked = append(a.asked, title)
	if v, ok := a.inputs[title]; ok {
		return v, nil
	}
	return def, nil
}

func (a *scriptedAsker) Confirm(title string, def bool) (bool, error) {
	a.asked = append(a.asked, title)
	if v, ok := a.confirms[title]; ok {
		return v, nil
	}
	return def, nil
}

func (a *scriptedAsker) Select(title string, _ []string, def string) (string, error) {
	a.asked = append(a.asked, title)
	if v, ok := a.selects[title]; ok {
		return v, nil
	}
	return def, nil
}

func TestResolve_FlagsSkipFeatureQuestions(t *testing.T) {
	asker := &scriptedAsker{}
	opts, err := Resolve(Flags{ProjectName: "app", TypeScript: true, Tests: true, ESLintWithPrettier: true}, asker, memfs.New())
	require.NoError(t, err)

	assert.Empty(t, asker.asked)
	assert.Equal(t, "app", opts.ProjectName)
	assert.Equal(t, "app", opts.PackageName)
	assert.True(t, opts.TypeScript)
	assert.True(t, opts.Vitest)
	assert.Equal(t, scaffold.E2ECypress, opts.E2E)
	assert.True(t, opts.ESLint)
	assert.True(t, opts.Prettier)
	assert.False(t, opts.Overwrite)
}

func TestResolve_DefaultFlagDisablesEverything(t *testing.T) {
	opts, err := Resolve(Flags{ProjectName: "app", Default: true}, &scriptedAsker{}, memfs.New())
	require.NoError(t, err)
	assert.Equal(t, scaffold.Options{ProjectName: "app", PackageName: "app"}, opts)
}

func TestResolve_Playwright(t *testing.T) {
	opts, err := Resolve(Flags{ProjectName: "app", Playwright: true}, &scriptedAsker{}, memfs.New())
	require.NoError(t, err)
	assert.Equal(t, scaffold.E2EPlaywright, opts.E2E)
}

func TestResolve_AsksFeatures(t *testing.T) {
	asker := &scriptedAsker{
		confirms: map[string]bool{
			"Add TypeScript?":                   true,
			"Add Pinia for state management?":   true,
			"Add ESLint for code quality?":      true,
			"Add Prettier for code formatting?": true,
		},
		selects: map[string]string{
			"Add an End-to-End Testing Solution?": "Playwright",
			"Pick a style guide:":                 "airbnb",
		},
	}

	opts, err := Resolve(Flags{}, asker, memfs.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultProjectName, opts.ProjectName)
	assert.True(t, opts.TypeScript)
	assert.False(t, opts.JSX)
	assert.True(t, opts.Pinia)
	assert.Equal(t, scaffold.E2EPlaywright, opts.E2E)
	assert.True(t, opts.ESLint)
	assert.True(t, opts.Prettier)
	assert.Equal(t, eslint.StyleAirbnb, opts.StyleGuide)
	assert.Equal(t, "Project name:", asker.asked[0])
}

func TestResolve_StyleFlagSkipsStyleQuestion(t *testing.T) {
	asker := &scriptedAsker{confirms: map[string]bool{"Add ESLint for code quality?": true}}

	opts, err := Resolve(Flags{ProjectName: "app", StyleGuide: eslint.StyleStandard, StyleSet: true}, asker, memfs.New())
	require.NoError(t, err)
	assert.Equal(t, eslint.StyleStandard, opts.StyleGuide)
	assert.NotContains(t, asker.asked, "Pick a style guide:")
}

func TestResolve_NoPrettierQuestionWithoutESLint(t *testing.T) {
	asker := &scriptedAsker{}
	_, err := Resolve(Flags{ProjectName: "app"}, asker, memfs.New())
	require.NoError(t, err)
	assert.NotContains(t, asker.asked, "Add Prettier for code formatting?")
}

func TestResolve_Overwrite(t *testing.T) {
	const question = `Target directory "app" is not empty. Remove existing files and continue?`

	t.Run("declined is cancelled", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "app/file.txt", []byte("x"), 0o644))

		_, err := Resolve(Flags{ProjectName: "app", Default: true}, &scriptedAsker{}, fs)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	})

	t.Run("accepted", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "app/file.txt", []byte("x"), 0o644))

		asker := &scriptedAsker{confirms: map[string]bool{question: true}}
		opts, err := Resolve(Flags{ProjectName: "app", Default: true}, asker, fs)
		require.NoError(t, err)
		assert.True(t, opts.Overwrite)
		assert.Equal(t, []string{question}, asker.asked)
	})

	t.Run("force skips the question", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "app/file.txt", []byte("x"), 0o644))

		asker := &scriptedAsker{}
		opts, err := Resolve(Flags{ProjectName: "app", Default: true, Force: true}, asker, fs)
		require.NoError(t, err)
		assert.True(t, opts.Overwrite)
		assert.Empty(t, asker.asked)
	})

	t.Run("git only needs no emptying", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, fs.MkdirAll("app/.git", 0o755))

		opts, err := Resolve(Flags{ProjectName: "app", Default: true}, &scriptedAsker{}, fs)
		require.NoError(t, err)
		assert.False(t, opts.Overwrite)
	})
}

func TestResolve_PackageName(t *testing.T) {
	t.Run("invalid project name prompts with normalized default", func(t *testing.T) {
		asker := &scriptedAsker{}
		opts, err := Resolve(Flags{ProjectName: "My App", Default: true}, asker, memfs.New())
		require.NoError(t, err)
		assert.Equal(t, "My App", opts.ProjectName)
		assert.Equal(t, "my-app", opts.PackageName)
		assert.Equal(t, []string{"Package name:"}, asker.asked)
	})

	t.Run("invalid answer is a validation error", func(t *testing.T) {
		asker := &scriptedAsker{inputs: map[string]string{"Package name:": "Still Bad"}}
		_, err := Resolve(Flags{ProjectName: "My App", Default: true}, asker, memfs.New())
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("current directory uses its name", func(t *testing.T) {
		opts, err := Resolve(Flags{ProjectName: ".", CurrentDirName: "site", Default: true, Force: true}, &scriptedAsker{}, memfs.New())
		require.NoError(t, err)
		assert.Equal(t, "site", opts.PackageName)
	})
}

func TestDefaultAsker(t *testing.T) {
	var a DefaultAsker
	s, _ := a.Input("q", "d")
	assert.Equal(t, "d", s)
	b, _ := a.Confirm("q", true)
	assert.True(t, b)
	sel, _ := a.Select("q", []string{"x", "y"}, "y")
	assert.Equal(t, "y", sel)
}
