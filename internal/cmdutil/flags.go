// Package cmdutil provides shared command utilities for create-vue
// subcommands. It centralizes flag group management and error reporting.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/prompt"
)

// FeatureFlags holds the project feature flags of the scaffolding command.
type FeatureFlags struct {
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
}

// AddTo registers the feature flags on the given cobra command.
func (f *FeatureFlags) AddTo(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.Default, "default", false, "Skip questions and scaffold the minimal project")
	flags.BoolVar(&f.TypeScript, "ts", false, "Add TypeScript (alias --typescript)")
	flags.BoolVar(&f.JSX, "jsx", false, "Add JSX support")
	flags.BoolVar(&f.Router, "router", false, "Add Vue Router (alias --vue-router)")
	flags.BoolVar(&f.Pinia, "pinia", false, "Add Pinia for state management")
	flags.BoolVar(&f.Tests, "tests", false, "Add Vitest and Cypress (alias --with-tests)")
	flags.BoolVar(&f.Vitest, "vitest", false, "Add Vitest for unit testing")
	flags.BoolVar(&f.Cypress, "cypress", false, "Add Cypress for end-to-end testing")
	flags.BoolVar(&f.Playwright, "playwright", false, "Add Playwright for end-to-end testing")
	flags.BoolVar(&f.ESLint, "eslint", false, "Add ESLint for code quality")
	flags.BoolVar(&f.ESLintWithPrettier, "eslint-with-prettier", false, "Add ESLint and Prettier")
	flags.BoolVar(&f.Force, "force", false, "Remove existing files in the target directory")
}

// PromptFlags converts the flag group into prompt input. styleSet marks a
// style guide chosen by the user rather than defaulted.
func (f *FeatureFlags) PromptFlags(projectName, currentDirName string, style eslint.StyleGuide, styleSet bool) prompt.Flags {
	return prompt.Flags{
		ProjectName:        projectName,
		CurrentDirName:     currentDirName,
		Default:            f.Default,
		TypeScript:         f.TypeScript,
		JSX:                f.JSX,
		Router:             f.Router,
		Pinia:              f.Pinia,
		Tests:              f.Tests,
		Vitest:             f.Vitest,
		Cypress:            f.Cypress,
		Playwright:         f.Playwright,
		ESLint:             f.ESLint,
		ESLintWithPrettier: f.ESLintWithPrettier,
		Force:              f.Force,
		StyleGuide:         style,
		StyleSet:           styleSet,
	}
}

// StyleFlags holds the lint style guide flag (create, eslint).
type StyleFlags struct {
	Style string
}

// AddTo registers the style flag on the given cobra command.
func (f *StyleFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Style, "style", "",
		fmt.Sprintf("ESLint style guide (%s)", strings.Join(eslint.StyleGuideNames(), ", ")))
}

// FlagAliases maps long-form flag spellings onto their canonical names.
var FlagAliases = map[string]string{
	"typescript": "ts",
	"vue-router": "router",
	"with-tests": "tests",
}

// ResolveProjectName returns the project name from command args, or ""
// when none was given.
func ResolveProjectName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
