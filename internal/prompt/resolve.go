package prompt

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/scaffold"
)

// DefaultProjectName is offered when no project name is given.
const DefaultProjectName = "vue-project"

// E2E answers offered by the end-to-end question.
const (
	e2eNone       = "No"
	e2eCypress    = "Cypress"
	e2ePlaywright = "Playwright"
)

// Flags are the raw command-line choices.
type Flags struct {
	ProjectName string
	// CurrentDirName names the working directory; it seeds the package name
	// when the project is created in ".".
	CurrentDirName string

	Default            bool
	TypeScript         bool
	JSX                bool
	Router             bool
	Pinia              bool
	Tests              bool
	Vitest             bool
	Cypress            bool
	Playwright         bool
	ESLint             bool
	ESLintWithPrettier bool
	Force              bool

	StyleGuide eslint.StyleGuide
	// StyleSet is true when the style guide came from --style.
	StyleSet bool
}

// FeatureFlagsUsed reports whether any feature flag was passed. When true
// no feature question is asked.
func (f Flags) FeatureFlagsUsed() bool {
	return f.Default || f.TypeScript || f.JSX || f.Router || f.Pinia || f.Tests ||
		f.Vitest || f.Cypress || f.Playwright || f.ESLint || f.ESLintWithPrettier
}

// Resolve turns flags into scaffold options, asking asker for anything the
// flags leave open. dest is inspected to decide whether the target must be
// emptied first.
func Resolve(f Flags, asker Asker, dest billy.Filesystem) (scaffold.Options, error) {
	var opts scaffold.Options

	name := strings.TrimRight(strings.TrimSpace(f.ProjectName), "/")
	if name == "" {
		answer, err := asker.Input("Project name:", DefaultProjectName)
		if err != nil {
			return opts, err
		}
		name = strings.TrimRight(strings.TrimSpace(answer), "/")
		if name == "" {
			name = DefaultProjectName
		}
	}
	opts.ProjectName = name

	overwrite, err := resolveOverwrite(f, asker, dest, name)
	if err != nil {
		return opts, err
	}
	opts.Overwrite = overwrite

	pkgName, err := resolvePackageName(f, asker, name)
	if err != nil {
		return opts, err
	}
	opts.PackageName = pkgName

	if f.FeatureFlagsUsed() {
		applyFlags(&opts, f)
	} else if err := askFeatures(&opts, f, asker); err != nil {
		return opts, err
	}

	output.Debug("resolved options",
		"project", opts.ProjectName,
		"package", opts.PackageName,
		"overwrite", opts.Overwrite,
		"typescript", opts.TypeScript,
		"e2e", opts.E2E,
		"eslint", opts.ESLint,
		"prettier", opts.Prettier,
		"style", opts.StyleGuide)
	return opts, nil
}

func resolveOverwrite(f Flags, asker Asker, dest billy.Filesystem, name string) (bool, error) {
	if f.Force {
		return true, nil
	}

	skip, err := scaffold.CanSkipEmptying(dest, name)
	if err != nil {
		return false, err
	}
	if skip {
		return false, nil
	}

	target := fmt.Sprintf("Target directory %q", name)
	if name == "." {
		target = "Current directory"
	}
	ok, err := asker.Confirm(target+" is not empty. Remove existing files and continue?", false)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, oerrors.Wrap(oerrors.ErrCancelled, "operation cancelled")
	}
	return true, nil
}

func resolvePackageName(f Flags, asker Asker, name string) (string, error) {
	candidate := name
	if name == "." && f.CurrentDirName != "" {
		candidate = f.CurrentDirName
	}
	if scaffold.IsValidPackageName(candidate) {
		return candidate, nil
	}

	answer, err := asker.Input("Package name:", scaffold.ToValidPackageName(candidate))
	if err != nil {
		return "", err
	}
	if err := scaffold.ValidatePackageName(answer); err != nil {
		return "", err
	}
	return answer, nil
}

func applyFlags(opts *scaffold.Options, f Flags) {
	opts.TypeScript = f.TypeScript
	opts.JSX = f.JSX
	opts.Router = f.Router
	opts.Pinia = f.Pinia
	opts.Vitest = f.Vitest || f.Tests

	switch {
	case f.Cypress || f.Tests:
		opts.E2E = scaffold.E2ECypress
	case f.Playwright:
		opts.E2E = scaffold.E2EPlaywright
	}

	opts.ESLint = f.ESLint || f.ESLintWithPrettier
	opts.Prettier = f.ESLintWithPrettier
	opts.StyleGuide = f.StyleGuide
}

func askFeatures(opts *scaffold.Options, f Flags, asker Asker) error {
	questions := []struct {
		title string
		dest  *bool
	}{
		{"Add TypeScript?", &opts.TypeScript},
		{"Add JSX Support?", &opts.JSX},
		{"Add Vue Router for Single Page Application development?", &opts.Router},
		{"Add Pinia for state management?", &opts.Pinia},
		{"Add Vitest for Unit Testing?", &opts.Vitest},
	}
	for _, q := range questions {
		v, err := asker.Confirm(q.title, false)
		if err != nil {
			return err
		}
		*q.dest = v
	}

	e2e, err := asker.Select("Add an End-to-End Testing Solution?",
		[]string{e2eNone, e2eCypress, e2ePlaywright}, e2eNone)
	if err != nil {
		return err
	}
	switch e2e {
	case e2eCypress:
		opts.E2E = scaffold.E2ECypress
	case e2ePlaywright:
		opts.E2E = scaffold.E2EPlaywright
	}

	if opts.ESLint, err = asker.Confirm("Add ESLint for code quality?", false); err != nil {
		return err
	}
	opts.StyleGuide = f.StyleGuide
	if !opts.ESLint {
		return nil
	}

	if !f.StyleSet {
		style, err := asker.Select("Pick a style guide:", eslint.StyleGuideNames(), f.StyleGuide.String())
		if err != nil {
			return err
		}
		if opts.StyleGuide, err = eslint.ParseStyleGuide(style); err != nil {
			return err
		}
	}

	opts.Prettier, err = asker.Confirm("Add Prettier for code formatting?", false)
	return err
}
