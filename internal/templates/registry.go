package templates

import (
	"path"
	"strings"
)

// Fragment identifies a template subtree by its path segments, for example
// Fragment{"config", "router"}.
type Fragment []string

// Path returns the slash-separated path of the fragment within the template root.
func (f Fragment) Path() string {
	return path.Join(f...)
}

// String implements fmt.Stringer.
func (f Fragment) String() string {
	return f.Path()
}

// Known fragments shipped in the embedded template root.
var (
	Base       = Fragment{"base"}
	JSX        = Fragment{"config", "jsx"}
	Router     = Fragment{"config", "router"}
	Pinia      = Fragment{"config", "pinia"}
	Vitest     = Fragment{"config", "vitest"}
	Cypress    = Fragment{"config", "cypress"}
	CypressCT  = Fragment{"config", "cypress-ct"}
	Playwright = Fragment{"config", "playwright"}
	TypeScript = Fragment{"config", "typescript"}

	TSConfigBase       = Fragment{"tsconfig", "base"}
	TSConfigCypress    = Fragment{"tsconfig", "cypress"}
	TSConfigCypressCT  = Fragment{"tsconfig", "cypress-ct"}
	TSConfigPlaywright = Fragment{"tsconfig", "playwright"}
	TSConfigVitest     = Fragment{"tsconfig", "vitest"}
)

// Known returns every fragment shipped with the CLI.
func Known() []Fragment {
	return []Fragment{
		Base, JSX, Router, Pinia, Vitest, Cypress, CypressCT, Playwright, TypeScript,
		TSConfigBase, TSConfigCypress, TSConfigCypressCT, TSConfigPlaywright, TSConfigVitest,
	}
}

// fileDescriptions annotates well-known generated files in the file tree output.
var fileDescriptions = map[string]string{
	"package.json":          "Package manifest",
	".gitignore":            "Git ignore rules",
	"index.html":            "HTML entry point",
	"vite.config.js":        "Vite configuration",
	"README.md":             "Project readme",
	"src/main.js":           "Application entry",
	"src/App.vue":           "Root component",
	"src/router/index.js":   "Vue Router setup",
	"src/stores/counter.js": "Pinia store",
	"env.d.ts":              "TypeScript ambient types",
	"tsconfig.json":         "TypeScript configuration",
	"cypress.config.js":     "Cypress configuration",
	"playwright.config.js":  "Playwright configuration",
	".eslintrc":             "ESLint configuration",
	".prettierrc":           "Prettier configuration",
	".editorconfig":         "Editor settings",
}

// Describe returns a short description for a generated file, or "".
func Describe(relPath string) string {
	if desc, ok := fileDescriptions[relPath]; ok {
		return desc
	}
	if strings.Contains(relPath, "__tests__/") || strings.HasPrefix(relPath, "cypress/e2e/") ||
		strings.HasPrefix(relPath, "e2e/") {
		return "Test"
	}
	return ""
}
