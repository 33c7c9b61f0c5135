package scaffold

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/manifest"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/value"
)

const (
	cypressE2EGlob = "cypress/e2e/**/*.{cy,spec}.{js,ts,jsx,tsx}"
	cypressCTGlob  = "**/__tests__/*.{cy,spec}.{js,ts,jsx,tsx}"
)

// pinnedVersion looks up a dependency version; tests replace it.
var pinnedVersion = eslint.Version

// LintOptions derives the synthesizer inputs for a project.
func LintOptions(o Options) (eslint.Options, error) {
	opts := eslint.Options{
		StyleGuide: o.StyleGuide,
		TypeScript: o.TypeScript,
		Prettier:   o.Prettier,
	}
	if !o.cypress() {
		return opts, nil
	}

	files := []string{cypressE2EGlob}
	if o.cypressCT() {
		files = []string{cypressCTGlob, cypressE2EGlob}
	}
	override := value.NewObject()
	override.Set("files", value.Strings(files...))
	override.Set("extends", value.Strings(eslint.ExtendCypress))

	cfg := value.NewObject()
	cfg.Set("overrides", value.Array(value.FromObject(override)))
	opts.AdditionalConfig = cfg

	v, ok := pinnedVersion(eslint.PkgPluginCypress)
	if !ok {
		return opts, oerrors.Wrap(oerrors.ErrPrecondition, "no pinned version for "+eslint.PkgPluginCypress)
	}
	deps := value.NewObject()
	deps.Set(eslint.PkgPluginCypress, value.String(v))
	opts.AdditionalDependencies = deps
	return opts, nil
}

// lintScripts returns the package.json scripts added with linting.
func lintScripts(o Options) *value.Object {
	exts := []string{".vue", ".js", ".jsx", ".cjs", ".mjs"}
	if o.TypeScript {
		exts = append(exts, ".ts", ".tsx", ".cts", ".mts")
	}

	scripts := value.NewObject()
	scripts.Set("lint", value.String("eslint . --ext "+strings.Join(exts, ",")+" --fix --ignore-path .gitignore"))
	if o.Prettier {
		scripts.Set("format", value.String("prettier --write src/"))
	}
	return scripts
}

// renderLint synthesizes the lint configuration, merges its dependencies and
// scripts into the project manifest and writes the config bundle.
func renderLint(fs billy.Filesystem, root string, o Options) (*eslint.Result, []string, error) {
	lintOpts, err := LintOptions(o)
	if err != nil {
		return nil, nil, err
	}

	res, err := eslint.Synthesize(lintOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("synthesizing lint config: %w", err)
	}

	overlay := value.NewObject()
	overlay.Set("scripts", value.FromObject(lintScripts(o)))
	overlay = value.MergeObjects(overlay, res.Manifest)

	if err := manifest.MergeInto(fs, fs.Join(root, manifest.FileName), overlay); err != nil {
		return nil, nil, err
	}

	written, err := res.Files.WriteTo(fs, root)
	if err != nil {
		return nil, nil, err
	}
	output.Debug("wrote lint config", "style", o.StyleGuide, "files", strings.Join(written, ","))
	return res, written, nil
}
