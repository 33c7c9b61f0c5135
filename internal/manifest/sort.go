// Package manifest normalizes and persists package.json manifests.
package manifest

import (
	"sort"

	"github.com/opmodel/create-vue/internal/value"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

// DependencySections lists the manifest sections whose entries are sorted,
// in the order they are emitted.
var DependencySections = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

func isDependencySection(key string) bool {
	for _, s := range DependencySections {
		if s == key {
			return true
		}
	}
	return false
}

// Sort returns a copy of pkg with every non-dependency key first, in its
// original order, followed by the dependency sections present in pkg with
// their entries sorted by name. Sections absent from pkg stay absent.
func Sort(pkg *value.Object) *value.Object {
	out := value.NewObject()

	pkg.Range(func(k string, v value.Value) bool {
		if !isDependencySection(k) {
			out.Set(k, v.Clone())
		}
		return true
	})

	for _, section := range DependencySections {
		v, ok := pkg.Get(section)
		if !ok {
			continue
		}
		deps, ok := v.AsObject()
		if !ok {
			// Not a map of dependencies; pass it through untouched.
			out.Set(section, v.Clone())
			continue
		}

		names := deps.Keys()
		sort.Strings(names)

		sorted := value.NewObject()
		for _, name := range names {
			dv, _ := deps.Get(name)
			sorted.Set(name, dv.Clone())
		}
		out.Set(section, value.FromObject(sorted))
	}

	return out
}
