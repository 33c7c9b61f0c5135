package eslint

import (
	"fmt"
	"sort"

	oerrors "github.com/opmodel/create-vue/internal/errors"
)

// Package names referenced by the synthesizer and the project renderer.
const (
	PkgESLint           = "eslint"
	PkgPluginVue        = "eslint-plugin-vue"
	PkgPatch            = "@rushstack/eslint-patch"
	PkgPrettier         = "prettier"
	PkgConfigPrettier   = "@vue/eslint-config-prettier"
	PkgConfigTS         = "@vue/eslint-config-typescript"
	PkgConfigAirbnb     = "@vue/eslint-config-airbnb"
	PkgConfigAirbnbTS   = "@vue/eslint-config-airbnb-with-typescript"
	PkgConfigStandard   = "@vue/eslint-config-standard"
	PkgConfigStandardTS = "@vue/eslint-config-standard-with-typescript"
	PkgTypeScript       = "typescript"
	PkgPluginCypress    = "eslint-plugin-cypress"
)

// versions is the closed table of pinned version ranges.
var versions = map[string]string{
	PkgPatch:            "^1.1.4",
	PkgConfigAirbnb:     "^7.0.0",
	PkgConfigAirbnbTS:   "^7.0.0",
	PkgConfigPrettier:   "^7.0.0",
	PkgConfigStandard:   "^8.0.1",
	PkgConfigStandardTS: "^8.0.0",
	PkgConfigTS:         "^11.0.0",
	PkgESLint:           "^8.22.0",
	PkgPluginVue:        "^9.3.0",
	PkgPrettier:         "^2.7.1",
	PkgTypeScript:       "~4.7.4",
	PkgPluginCypress:    "^2.12.1",
}

// Version returns the pinned version range for a package.
func Version(name string) (string, bool) {
	v, ok := versions[name]
	return v, ok
}

// Packages returns every package in the version table, sorted.
func Packages() []string {
	names := make([]string, 0, len(versions))
	for n := range versions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// lookupVersion fails with ErrPrecondition for a name outside the table.
// The table is maintainer-controlled, so a miss is a programming error.
func lookupVersion(name string) (string, error) {
	v, ok := versions[name]
	if !ok {
		return "", oerrors.Wrap(oerrors.ErrPrecondition, fmt.Sprintf("no pinned version for dependency %q", name))
	}
	return v, nil
}
