// Package templates provides the embedded Vue project template fragments and
// the copier that overlays them onto a project directory.
package templates

import (
	"embed"
	"io/fs"
)

// The all: prefix keeps underscore-prefixed files such as _gitignore.
//
//go:embed all:template
var embedded embed.FS

// FS returns the embedded template root. Fragment paths resolve against it.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "template")
	if err != nil {
		panic(err)
	}
	return sub
}
