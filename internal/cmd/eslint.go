package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/create-vue/internal/cmdutil"
	"github.com/opmodel/create-vue/internal/config"
	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/manifest"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/value"
)

// NewESLintCmd creates the eslint preview command.
func NewESLintCmd() *cobra.Command {
	var (
		styleFlags   cmdutil.StyleFlags
		tsFlag       bool
		prettierFlag bool
		outputFlag   string
	)

	c := &cobra.Command{
		Use:   "eslint",
		Short: "Preview the generated lint configuration",
		Long: `Preview the lint configuration a project would receive.

Prints the devDependencies added to package.json followed by the contents of
.editorconfig, .prettierrc and .eslintrc. Nothing is written to disk.

Examples:
  # Default style guide, JavaScript
  create-vue eslint

  # Airbnb with TypeScript and Prettier, as JSON
  create-vue eslint --style airbnb --ts --prettier -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return reportError(runESLint(c.OutOrStdout(), styleFlags.Style, tsFlag, prettierFlag, outputFlag))
		},
	}

	styleFlags.AddTo(c)
	c.Flags().BoolVar(&tsFlag, "ts", false, "Lint TypeScript sources")
	c.Flags().BoolVar(&prettierFlag, "prettier", false, "Format with Prettier")
	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runESLint(w io.Writer, styleName string, typeScript, prettier bool, format string) error {
	outFormat := output.ParseOutputFormat(format)
	if !outFormat.Valid() {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", format), "--output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "))
	}

	style, rv, err := config.ResolveStyleGuide(styleName, GetConfig())
	if err != nil {
		return err
	}
	config.LogResolvedValues(rv)

	res, err := eslint.Synthesize(eslint.Options{
		StyleGuide: style,
		TypeScript: typeScript,
		Prettier:   prettier,
	})
	if err != nil {
		return err
	}

	switch outFormat {
	case output.FormatJSON:
		data, err := value.Pretty(value.FromObject(previewDocument(res)))
		if err != nil {
			return fmt.Errorf("encoding preview: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case output.FormatYAML:
		data, err := yaml.Marshal(value.FromObject(previewDocument(res)))
		if err != nil {
			return fmt.Errorf("encoding preview: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return writeTextPreview(w, res)
	}
}

// previewDocument combines the sorted manifest fragment with the bundle
// file contents keyed by file name.
func previewDocument(res *eslint.Result) *value.Object {
	doc := manifest.Sort(res.Manifest)
	files := value.NewObject()
	for _, f := range res.Files.Files() {
		content, _ := f.Content()
		files.Set(f.Name, value.String(content))
	}
	doc.Set("files", value.FromObject(files))
	return doc
}

func writeTextPreview(w io.Writer, res *eslint.Result) error {
	styles := output.GetStyles()

	data, err := value.Pretty(value.FromObject(manifest.Sort(res.Manifest)))
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(styles.Bold.Render("# " + manifest.FileName))
	sb.WriteString("\n")
	sb.Write(data)
	sb.WriteString("\n")

	for _, f := range res.Files.Files() {
		content, _ := f.Content()
		sb.WriteString("\n")
		sb.WriteString(styles.Bold.Render("# " + f.Name))
		sb.WriteString("\n")
		sb.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			sb.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, sb.String())
	return err
}
