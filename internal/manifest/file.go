package manifest

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/value"
)

// Read loads the manifest at path. A missing file or a document that is not
// a JSON object is a precondition failure.
func Read(fs billy.Basic, path string) (*value.Object, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, oerrors.NewPreconditionError("cannot read manifest", path, err)
	}

	obj, err := value.ParseObject(data)
	if err != nil {
		return nil, oerrors.NewPreconditionError("malformed manifest", path, err)
	}
	return obj, nil
}

// Write serializes pkg with two-space indentation and a trailing newline.
func Write(fs billy.Basic, path string, pkg *value.Object) error {
	data, err := value.Pretty(value.FromObject(pkg))
	if err != nil {
		return fmt.Errorf("encoding manifest %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := util.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// MergeInto merges overlay into the existing manifest at path, sorts the
// dependency sections and rewrites the file. The destination must exist.
func MergeInto(fs billy.Basic, path string, overlay *value.Object) error {
	base, err := Read(fs, path)
	if err != nil {
		return err
	}
	return Write(fs, path, Sort(value.MergeObjects(base, overlay)))
}
