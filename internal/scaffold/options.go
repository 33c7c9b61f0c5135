// Package scaffold generates a Vue project directory from the embedded
// template fragments and the synthesized lint configuration.
package scaffold

import (
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/templates"
)

// E2E selects the end-to-end test framework.
type E2E int

const (
	E2ENone E2E = iota
	E2ECypress
	E2EPlaywright
)

func (e E2E) String() string {
	switch e {
	case E2ECypress:
		return "cypress"
	case E2EPlaywright:
		return "playwright"
	default:
		return "none"
	}
}

// Options are the resolved feature choices for one project.
type Options struct {
	// ProjectName is the target directory, relative to the destination root.
	ProjectName string
	// PackageName is written to package.json.
	PackageName string

	TypeScript bool
	JSX        bool
	Router     bool
	Pinia      bool
	Vitest     bool
	E2E        E2E
	ESLint     bool
	Prettier   bool
	StyleGuide eslint.StyleGuide

	// Overwrite empties an existing target directory first.
	Overwrite bool
}

func (o Options) cypress() bool    { return o.E2E == E2ECypress }
func (o Options) cypressCT() bool  { return o.cypress() && !o.Vitest }
func (o Options) playwright() bool { return o.E2E == E2EPlaywright }

// Plan returns the fragments to apply, in order.
func (o Options) Plan() []templates.Fragment {
	plan := []templates.Fragment{templates.Base}

	optional := []struct {
		on   bool
		frag templates.Fragment
	}{
		{o.JSX, templates.JSX},
		{o.Router, templates.Router},
		{o.Pinia, templates.Pinia},
		{o.Vitest, templates.Vitest},
		{o.cypress(), templates.Cypress},
		{o.cypressCT(), templates.CypressCT},
		{o.playwright(), templates.Playwright},
	}
	if o.TypeScript {
		optional = append(optional, []struct {
			on   bool
			frag templates.Fragment
		}{
			{true, templates.TypeScript},
			{true, templates.TSConfigBase},
			{o.cypress(), templates.TSConfigCypress},
			{o.cypressCT(), templates.TSConfigCypressCT},
			{o.playwright(), templates.TSConfigPlaywright},
			{o.Vitest, templates.TSConfigVitest},
		}...)
	}

	for _, f := range optional {
		if f.on {
			plan = append(plan, f.frag)
		}
	}
	return plan
}
