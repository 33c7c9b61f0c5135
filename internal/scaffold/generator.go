package scaffold

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/manifest"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/templates"
	"github.com/opmodel/create-vue/internal/value"
)

// Result describes a generated project.
type Result struct {
	// TargetDir is the project directory on the destination filesystem.
	TargetDir string
	// Files lists the generated files relative to TargetDir, sorted.
	Files []string
	// Fragments lists the applied template fragments, in order.
	Fragments []templates.Fragment
	// Lint is the synthesized lint configuration, nil without ESLint.
	Lint *eslint.Result
}

// Generator materializes a project from template fragments.
type Generator struct {
	src  fs.FS
	dest billy.Filesystem
	opts Options
}

// NewGenerator returns a Generator reading templates from src and writing
// the project below opts.ProjectName on dest.
func NewGenerator(src fs.FS, dest billy.Filesystem, opts Options) *Generator {
	return &Generator{src: src, dest: dest, opts: opts}
}

// Generate writes the project. A failure leaves already written files in
// place.
func (g *Generator) Generate() (*Result, error) {
	if err := ValidatePackageName(g.opts.PackageName); err != nil {
		return nil, err
	}

	root := g.opts.ProjectName
	if err := g.prepareTarget(root); err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"name", g.opts.ProjectName,
		"package", g.opts.PackageName,
		"typescript", g.opts.TypeScript,
		"e2e", g.opts.E2E,
		"eslint", g.opts.ESLint)

	if err := manifest.Write(g.dest, g.dest.Join(root, manifest.FileName), baseManifest(g.opts.PackageName)); err != nil {
		return nil, err
	}

	plan := g.opts.Plan()
	copier := templates.NewCopier(g.src, g.dest, root)
	if err := copier.ApplyAll(plan...); err != nil {
		return nil, err
	}

	files := map[string]struct{}{manifest.FileName: {}}
	for _, f := range copier.Written() {
		files[f] = struct{}{}
	}

	result := &Result{TargetDir: root, Fragments: plan}
	if g.opts.ESLint {
		res, written, err := renderLint(g.dest, root, g.opts)
		if err != nil {
			return nil, err
		}
		result.Lint = res
		for _, f := range written {
			files[f] = struct{}{}
		}
	}

	for f := range files {
		result.Files = append(result.Files, f)
	}
	sort.Strings(result.Files)
	return result, nil
}

func (g *Generator) prepareTarget(root string) error {
	if g.opts.Overwrite {
		if err := EmptyDir(g.dest, root); err != nil {
			return err
		}
	}
	if err := g.dest.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}
	return nil
}

func baseManifest(packageName string) *value.Object {
	pkg := value.NewObject()
	pkg.Set("name", value.String(packageName))
	pkg.Set("version", value.String("0.0.0"))
	return pkg
}
