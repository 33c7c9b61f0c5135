package eslint

import (
	"fmt"

	"github.com/opmodel/create-vue/internal/value"
)

const (
	envComment = "/* eslint-env node */\n"
	patchLine  = "require('@rushstack/eslint-patch/modern-module-resolution')\n\n"
)

// Options are the inputs of Synthesize.
type Options struct {
	StyleGuide StyleGuide
	TypeScript bool
	Prettier   bool

	// AdditionalConfig is merged into the lint configuration.
	AdditionalConfig *value.Object
	// AdditionalDependencies maps package names to version ranges and is
	// merged into devDependencies.
	AdditionalDependencies *value.Object
}

// Result is the outcome of Synthesize.
type Result struct {
	// Manifest is a package.json fragment holding devDependencies.
	Manifest *value.Object
	// Config is the final lint configuration.
	Config *value.Object
	Files  *Bundle
}

// synthesis accumulates the dependency manifest and lint configuration.
type synthesis struct {
	deps    *value.Object
	extends []value.Value
}

func (s *synthesis) addDependency(name string) error {
	v, err := lookupVersion(name)
	if err != nil {
		return err
	}
	s.deps.Set(name, value.String(v))
	return nil
}

func (s *synthesis) addExtend(ids ...string) {
	for _, id := range ids {
		s.extends = append(s.extends, value.String(id))
	}
}

// Synthesize builds the lint configuration, its dev dependencies and the
// config file bundle for the given options.
func Synthesize(opts Options) (*Result, error) {
	s := &synthesis{deps: value.NewObject()}
	s.addExtend(ExtendVueEssential)

	for _, name := range []string{PkgESLint, PkgPluginVue} {
		if err := s.addDependency(name); err != nil {
			return nil, err
		}
	}

	patch := needsPatch(opts.StyleGuide, opts.TypeScript, opts.Prettier)
	if patch {
		if err := s.addDependency(PkgPatch); err != nil {
			return nil, err
		}
	}

	rules := rulesFor(opts.StyleGuide, LanguageFor(opts.TypeScript))
	s.addExtend(rules.extends...)
	for _, name := range rules.deps {
		if err := s.addDependency(name); err != nil {
			return nil, err
		}
	}

	if opts.Prettier {
		for _, name := range []string{PkgPrettier, PkgConfigPrettier} {
			if err := s.addDependency(name); err != nil {
				return nil, err
			}
		}
		s.addExtend(ExtendPrettier)
	}

	manifest := value.NewObject()
	manifest.Set("devDependencies", value.FromObject(s.deps))
	if opts.AdditionalDependencies != nil {
		extra := value.NewObject()
		extra.Set("devDependencies", value.FromObject(opts.AdditionalDependencies))
		manifest = value.MergeObjects(manifest, extra)
	}

	config := value.NewObject()
	config.Set("root", value.Bool(true))
	config.Set("extends", value.Array(s.extends...))
	if opts.AdditionalConfig != nil {
		config = value.MergeObjects(config, opts.AdditionalConfig)
	}

	files := NewBundle()
	if opts.StyleGuide == StyleDefault {
		files.ESLint.Push(envComment)
		parserOptions := value.NewObject()
		parserOptions.Set("ecmaVersion", value.String("latest"))
		config.Set("parserOptions", value.FromObject(parserOptions))
	} else if ec := EditorConfig(opts.StyleGuide); ec != "" {
		files.EditorConfig.Push(ec)
	}

	// Only non-default style guides take the patch, so the rule file is
	// still empty here and appending is the same as prepending.
	if patch {
		files.ESLint.Push(patchLine)
	}

	rendered, err := RenderModule(config, opts.StyleGuide)
	if err != nil {
		return nil, err
	}
	files.ESLint.Push(rendered)

	if opts.Prettier {
		data, err := value.Pretty(value.FromObject(PrettierConfig(opts.StyleGuide)))
		if err != nil {
			return nil, fmt.Errorf("encoding prettier config: %w", err)
		}
		files.Prettier.Push(string(data) + "\n")
	}

	return &Result{Manifest: manifest, Config: config, Files: files}, nil
}

// RenderModule renders config as a CommonJS module export, substituting the
// alias placeholder for the style guide.
func RenderModule(config *value.Object, style StyleGuide) (string, error) {
	data, err := value.Pretty(value.FromObject(config))
	if err != nil {
		return "", fmt.Errorf("encoding lint config: %w", err)
	}
	return "module.exports = " + substituteAlias(string(data), style) + "\n", nil
}

// Dependencies returns the devDependencies of the result.
func (r *Result) Dependencies() *value.Object {
	v, ok := r.Manifest.Get("devDependencies")
	if !ok {
		return value.NewObject()
	}
	deps, ok := v.AsObject()
	if !ok {
		return value.NewObject()
	}
	return deps
}

// Extends returns the extends array of the final configuration as strings.
func (r *Result) Extends() []string {
	v, ok := r.Config.Get("extends")
	if !ok {
		return nil
	}
	arr, _ := v.AsArray()
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}
