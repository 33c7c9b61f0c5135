package scaffold

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// keptEntry survives EmptyDir and does not count as content.
const keptEntry = ".git"

// CanSkipEmptying reports whether dir is missing or holds nothing but a
// .git entry. A dir that is a regular file is an error.
func CanSkipEmptying(fs billy.Filesystem, dir string) (bool, error) {
	entries, err := readDir(fs, dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.Name() != keptEntry {
			return false, nil
		}
	}
	return true, nil
}

// EmptyDir removes every entry of dir except .git. A missing dir is not an
// error.
func EmptyDir(fs billy.Filesystem, dir string) error {
	entries, err := readDir(fs, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name() == keptEntry {
			continue
		}
		p := fs.Join(dir, e.Name())
		if err := util.RemoveAll(fs, p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}

// readDir returns nil entries for a missing dir.
func readDir(fs billy.Filesystem, dir string) ([]os.FileInfo, error) {
	info, err := fs.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	return entries, nil
}
