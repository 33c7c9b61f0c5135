package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/scaffold"
	"github.com/opmodel/create-vue/internal/testutil"
	"github.com/opmodel/create-vue/internal/value"
)

// executeCmd runs the root command with args and returns what it printed.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// inTempDir isolates HOME and moves into a fresh working directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	testutil.IsolateHome(t)
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func readManifest(t *testing.T, path string) *value.Object {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	obj, err := value.ParseObject(data)
	require.NoError(t, err)
	return obj
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T: %v", err, err)
	assert.Equal(t, code, exitErr.Code, "exit code %s", ExitCodeName(exitErr.Code))
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "create-vue", cmd.Name())
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{
		"default", "ts", "jsx", "router", "pinia", "tests", "vitest", "cypress",
		"playwright", "eslint", "eslint-with-prettier", "style", "force", "template-dir",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
	for _, name := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag --%s", name)
	}

	var sub []string
	for _, c := range cmd.Commands() {
		sub = append(sub, c.Name())
	}
	assert.Subset(t, sub, []string{"eslint", "config", "version"})
}

func TestCreate_Default(t *testing.T) {
	dir := inTempDir(t)

	out, err := executeCmd(t, "my-app", "--default")
	require.NoError(t, err)

	root := filepath.Join(dir, "my-app")
	assert.FileExists(t, filepath.Join(root, "index.html"))
	assert.FileExists(t, filepath.Join(root, "src", "main.js"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(root, "_gitignore"))
	assert.NoFileExists(t, filepath.Join(root, ".eslintrc"))

	pkg := readManifest(t, filepath.Join(root, "package.json"))
	name, _ := pkg.Get("name")
	assert.True(t, name.Equal(value.String("my-app")))

	assert.Contains(t, out, "Vue.js - The Progressive JavaScript Framework")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "npm install")
	assert.NotContains(t, out, "npm run lint")
}

func TestCreate_FeatureFlagsWithLint(t *testing.T) {
	dir := inTempDir(t)

	out, err := executeCmd(t, "lint-app", "--typescript", "--vue-router", "--eslint", "--style", "standard")
	require.NoError(t, err)

	root := filepath.Join(dir, "lint-app")
	assert.FileExists(t, filepath.Join(root, "tsconfig.json"))
	assert.FileExists(t, filepath.Join(root, "src", "router", "index.js"))
	assert.FileExists(t, filepath.Join(root, ".eslintrc"))
	assert.FileExists(t, filepath.Join(root, ".editorconfig"))
	assert.NoFileExists(t, filepath.Join(root, ".prettierrc"))

	pkg := readManifest(t, filepath.Join(root, "package.json"))
	dev, ok := pkg.Get("devDependencies")
	require.True(t, ok)
	deps, ok := dev.AsObject()
	require.True(t, ok)
	assert.True(t, deps.Has(eslint.PkgESLint))
	assert.True(t, deps.Has(eslint.PkgConfigStandardTS))
	assert.True(t, deps.Has(eslint.PkgPatch))

	lint, ok := value.FromObject(pkg).Lookup("scripts", "lint")
	require.True(t, ok)
	s, _ := lint.AsString()
	assert.Contains(t, s, ".ts,.tsx")

	assert.Contains(t, out, "npm run lint")
}

func TestCreate_CurrentDirectory(t *testing.T) {
	dir := inTempDir(t)
	testutil.WriteFile(t, dir, "stale.txt", "old")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	out, err := executeCmd(t, ".", "--default", "--force")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "stale.txt"))
	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.NotContains(t, out, "cd .")

	pkg := readManifest(t, filepath.Join(dir, "package.json"))
	name, _ := pkg.Get("name")
	assert.True(t, name.Equal(value.String(scaffold.ToValidPackageName(filepath.Base(dir)))))
}

func TestCreate_NonEmptyTargetWithoutForce(t *testing.T) {
	dir := inTempDir(t)
	testutil.WriteFile(t, dir, "taken/keep.txt", "mine")

	_, err := executeCmd(t, "taken", "--default")
	requireExitCode(t, err, ExitCancelled)
	assert.FileExists(t, filepath.Join(dir, "taken", "keep.txt"))
}

func TestCreate_InvalidProjectNameIsNormalized(t *testing.T) {
	dir := inTempDir(t)

	_, err := executeCmd(t, "My App", "--default")
	require.NoError(t, err)

	pkg := readManifest(t, filepath.Join(dir, "My App", "package.json"))
	name, _ := pkg.Get("name")
	assert.True(t, name.Equal(value.String("my-app")))
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown style guide", []string{"app", "--eslint", "--style", "google"}, ExitValidationError},
		{"missing template dir", []string{"app", "--default", "--template-dir", "does-not-exist"}, ExitNotFound},
		{"too many arguments", []string{"a", "b"}, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			_, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCodeFromError(err))
		})
	}
}

func TestCreate_CustomTemplateDir(t *testing.T) {
	dir := inTempDir(t)
	tpl := filepath.Join(dir, "tpl")
	testutil.WriteFile(t, tpl, "base/package.json", `{"private":true}`)
	testutil.WriteFile(t, tpl, "base/_gitignore", "node_modules")
	testutil.WriteFile(t, tpl, "base/index.html", "<div id=\"app\"></div>")

	_, err := executeCmd(t, "custom", "--default", "--template-dir", tpl)
	require.NoError(t, err)

	root := filepath.Join(dir, "custom")
	assert.FileExists(t, filepath.Join(root, "index.html"))
	assert.NoFileExists(t, filepath.Join(root, "src", "main.js"))

	pkg := readManifest(t, filepath.Join(root, "package.json"))
	assert.Equal(t, []string{"name", "version", "private"}, pkg.Keys())
}

func TestCreate_StyleFromConfig(t *testing.T) {
	dir := inTempDir(t)
	cfgPath := testutil.WriteFile(t, dir, "cfg/config.yaml", "styleGuide: airbnb\n")

	_, err := executeCmd(t, "cfg-app", "--eslint", "--config", cfgPath)
	require.NoError(t, err)

	pkg := readManifest(t, filepath.Join(dir, "cfg-app", "package.json"))
	_, ok := value.FromObject(pkg).Lookup("devDependencies", eslint.PkgConfigAirbnb)
	assert.True(t, ok)
}
