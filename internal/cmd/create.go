package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/opmodel/create-vue/internal/cmdutil"
	"github.com/opmodel/create-vue/internal/config"
	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/prompt"
	"github.com/opmodel/create-vue/internal/scaffold"
	"github.com/opmodel/create-vue/internal/templates"
)

// createFlags holds the flags of the scaffolding command.
type createFlags struct {
	features    cmdutil.FeatureFlags
	style       cmdutil.StyleFlags
	templateDir string
}

func newCreateCmd() *cobra.Command {
	f := &createFlags{}

	c := &cobra.Command{
		Use:   "create-vue [project-name]",
		Short: "Scaffold a Vue.js project",
		Long: `Scaffold a new Vue.js project.

Without feature flags the options are asked interactively. When any feature
flag is given no questions are asked and unset features stay off.

Examples:
  # Answer the questions interactively
  create-vue

  # Router, Pinia and TypeScript in ./my-app
  create-vue my-app --ts --router --pinia

  # Lint with the Airbnb style guide and Prettier
  create-vue my-app --eslint-with-prettier --style airbnb

  # Scaffold into the current directory, removing what is there
  create-vue . --default --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return reportError(runCreate(c, args, f))
		},
	}

	f.features.AddTo(c)
	f.style.AddTo(c)
	c.Flags().StringVar(&f.templateDir, "template-dir", "", "Read templates from this directory instead of the built-in set")

	return c
}

func runCreate(c *cobra.Command, args []string, f *createFlags) error {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n\n", output.Banner(output.IsTTY()))

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg := GetConfig()
	style, styleValue, err := config.ResolveStyleGuide(f.style.Style, cfg)
	if err != nil {
		return err
	}
	config.LogResolvedValues(styleValue)

	pf := f.features.PromptFlags(cmdutil.ResolveProjectName(args), filepath.Base(cwd),
		style, styleValue.Source != config.SourceDefault)

	dest := osfs.New(cwd)
	opts, err := prompt.Resolve(pf, newAsker(), dest)
	if err != nil {
		return err
	}

	src, err := templateSource(f.templateDir, cfg)
	if err != nil {
		return err
	}

	log := output.ProjectLogger(opts.ProjectName)
	log.Debug("scaffolding", "dir", filepath.Join(cwd, opts.ProjectName))

	var result *scaffold.Result
	err = output.RunWithSpinner(c.Context(), func() error {
		var genErr error
		result, genErr = scaffold.NewGenerator(src, dest, opts).Generate()
		return genErr
	}, output.WithTitle("Scaffolding project in "+opts.ProjectName+"..."))
	if err != nil {
		return err
	}
	log.Debug("project generated", "files", len(result.Files), "fragments", len(result.Fragments))

	printSummary(out, cwd, opts, result)
	return nil
}

// newAsker picks huh prompts on a terminal and defaults everywhere else.
func newAsker() prompt.Asker {
	if !output.IsInteractive() {
		return prompt.DefaultAsker{}
	}
	return &prompt.HuhAsker{Accessible: os.Getenv("ACCESSIBLE") != ""}
}

// templateSource resolves the template root: --template-dir > config
// templateDir > embedded templates.
func templateSource(flagDir string, cfg *config.Config) (fs.FS, error) {
	dir := flagDir
	if dir == "" && cfg != nil {
		dir = cfg.TemplateDir
	}
	if dir == "" {
		return templates.FS(), nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("expanding template dir: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewNotFoundError("template directory not found", expanded,
			"Pass --template-dir pointing at a directory with base/ and config/ fragments.")
	}
	output.Debug("using template directory", "path", expanded)
	return os.DirFS(expanded), nil
}

func printSummary(out io.Writer, cwd string, opts scaffold.Options, result *scaffold.Result) {
	target := filepath.Join(cwd, result.TargetDir)
	fmt.Fprintf(out, "%s\n\n", output.FormatCheckmark("Scaffolding project in "+output.StyleNoun.Render(target)))
	fmt.Fprint(out, output.RenderFileTree(result.TargetDir, result.Files, templates.Describe))
	fmt.Fprintln(out)

	var steps []string
	if opts.ProjectName != "." {
		steps = append(steps, "cd "+quoteIfNeeded(opts.ProjectName))
	}
	steps = append(steps, "npm install")
	if opts.ESLint {
		steps = append(steps, "npm run lint")
	}
	steps = append(steps, "npm run dev")
	fmt.Fprint(out, output.FormatNextSteps(steps...))
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
