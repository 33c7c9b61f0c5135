package eslint

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Output file names of a Bundle.
const (
	EditorConfigFile = ".editorconfig"
	ESLintFile       = ".eslintrc"
	PrettierFile     = ".prettierrc"
)

// ConfigFile is a named output buffer. Content is only ever appended; a
// file that was never pushed to is not written.
type ConfigFile struct {
	Name string

	buf    strings.Builder
	pushed bool
}

// Push appends s to the buffer.
func (f *ConfigFile) Push(s string) {
	f.buf.WriteString(s)
	f.pushed = true
}

// Content returns the accumulated content and whether anything was pushed.
func (f *ConfigFile) Content() (string, bool) {
	return f.buf.String(), f.pushed
}

// Bundle holds the three config files produced by one synthesis.
type Bundle struct {
	EditorConfig *ConfigFile
	ESLint       *ConfigFile
	Prettier     *ConfigFile
}

// NewBundle returns a bundle with three empty slots.
func NewBundle() *Bundle {
	return &Bundle{
		EditorConfig: &ConfigFile{Name: EditorConfigFile},
		ESLint:       &ConfigFile{Name: ESLintFile},
		Prettier:     &ConfigFile{Name: PrettierFile},
	}
}

// Files returns the slots that hold content, in write order.
func (b *Bundle) Files() []*ConfigFile {
	var out []*ConfigFile
	for _, f := range []*ConfigFile{b.EditorConfig, b.Prettier, b.ESLint} {
		if _, ok := f.Content(); ok {
			out = append(out, f)
		}
	}
	return out
}

// WriteTo writes every non-empty slot as a sibling file under root and
// returns the names written.
func (b *Bundle) WriteTo(fs billy.Filesystem, root string) ([]string, error) {
	var names []string
	for _, f := range b.Files() {
		content, _ := f.Content()
		p := fs.Join(root, f.Name)
		if err := util.WriteFile(fs, p, []byte(content), 0o644); err != nil {
			return names, fmt.Errorf("writing %s: %w", p, err)
		}
		names = append(names, f.Name)
	}
	return names, nil
}
