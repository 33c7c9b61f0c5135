package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/manifest"
	"github.com/opmodel/create-vue/internal/output"
	"github.com/opmodel/create-vue/internal/value"
)

// skippedDirName is never descended into nor created at the destination.
const skippedDirName = "node_modules"

// Copier overlays template fragments from a source tree onto a destination
// directory. Fragments are applied in the order Apply is called.
type Copier struct {
	src  fs.FS
	dest billy.Filesystem
	root string

	written map[string]struct{}
}

// NewCopier returns a Copier reading fragments from src and writing below
// root on dest. An empty root means the destination filesystem root.
func NewCopier(src fs.FS, dest billy.Filesystem, root string) *Copier {
	if root == "" {
		root = "."
	}
	return &Copier{
		src:     src,
		dest:    dest,
		root:    root,
		written: make(map[string]struct{}),
	}
}

// ApplyAll applies fragments in order, stopping at the first failure.
func (c *Copier) ApplyAll(fragments ...Fragment) error {
	for _, f := range fragments {
		if err := c.Apply(f); err != nil {
			return err
		}
	}
	return nil
}

// Apply overlays a single fragment onto the destination. Files already
// written stay on disk when a later file fails.
func (c *Copier) Apply(f Fragment) error {
	base := f.Path()
	info, err := fs.Stat(c.src, base)
	if err != nil || !info.IsDir() {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("template fragment %q not found", base),
			base,
			"check --template-dir points at a complete template root",
		)
	}

	output.Debug("applying fragment", "fragment", base)

	return fs.WalkDir(c.src, base, func(srcPath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walking %s: %w", srcPath, walkErr)
		}

		rel := relTo(base, srcPath)
		if d.IsDir() {
			if d.Name() == skippedDirName {
				output.Debug("skipping directory", "path", srcPath)
				return fs.SkipDir
			}
			return c.mkdir(rel)
		}
		return c.applyFile(srcPath, rel)
	})
}

// Written returns the destination paths, relative to the root, touched by
// the copier so far, sorted.
func (c *Copier) Written() []string {
	out := make([]string, 0, len(c.written))
	for p := range c.written {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (c *Copier) mkdir(rel string) error {
	if rel == "." {
		return nil
	}
	dir := c.dest.Join(c.root, rel)
	if err := c.dest.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

func (c *Copier) applyFile(srcPath, rel string) error {
	name := path.Base(rel)
	policy := PolicyFor(name)
	targetRel := path.Join(path.Dir(rel), TargetName(name))
	target := c.dest.Join(c.root, targetRel)

	output.Debug("template file", "path", srcPath, "policy", policy, "target", targetRel)

	data, err := fs.ReadFile(c.src, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	switch policy {
	case PolicyManifest:
		overlay, err := value.ParseObject(data)
		if err != nil {
			return oerrors.NewPreconditionError("malformed template manifest", srcPath, err)
		}
		if err := manifest.MergeInto(c.dest, target, overlay); err != nil {
			return err
		}
	case PolicyAppend:
		existing, err := util.ReadFile(c.dest, target)
		switch {
		case err == nil:
			data = append(append(existing, '\n'), data...)
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("reading %s: %w", target, err)
		}
		if err := util.WriteFile(c.dest, target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	default:
		if err := util.WriteFile(c.dest, target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}

	c.written[targetRel] = struct{}{}
	return nil
}

// relTo returns p relative to base, both slash-separated with p inside base.
func relTo(base, p string) string {
	if p == base {
		return "."
	}
	return p[len(base)+1:]
}
