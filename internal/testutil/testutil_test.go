package testutil

import (
	"io/fs"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFilesReadTree(t *testing.T) {
	mfs := memfs.New()
	WriteFiles(t, mfs, map[string]string{
		"app/package.json": "{}",
		"app/src/main.js":  "import './a'",
		"other/x":          "x",
	})

	assert.Equal(t, map[string]string{
		"package.json": "{}",
		"src/main.js":  "import './a'",
	}, ReadTree(t, mfs, "app"))
}

func TestTemplateFS(t *testing.T) {
	src := TemplateFS(map[string]string{"base/_gitignore": "node_modules"})

	data, err := fs.ReadFile(src, "base/_gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules", string(data))
}

func TestIsolateHome(t *testing.T) {
	home := IsolateHome(t)

	got, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, got)
	assert.Empty(t, os.Getenv("CREATE_VUE_CONFIG"))
}
