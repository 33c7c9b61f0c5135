package templates

import (
	"strings"

	"github.com/opmodel/create-vue/internal/manifest"
)

// Policy is the action the copier takes for a template file.
type Policy int

const (
	// PolicyCopy writes the file byte for byte, replacing any existing file.
	PolicyCopy Policy = iota
	// PolicyDotfile copies the file under its dotted name.
	PolicyDotfile
	// PolicyAppend appends the file to an existing ignore file, or copies it
	// under its dotted name when there is none.
	PolicyAppend
	// PolicyManifest deep-merges the file into the destination manifest.
	PolicyManifest
)

// String returns the policy name used in logs.
func (p Policy) String() string {
	switch p {
	case PolicyCopy:
		return "copy"
	case PolicyDotfile:
		return "copy-renamed"
	case PolicyAppend:
		return "append"
	case PolicyManifest:
		return "merge"
	default:
		return "unknown"
	}
}

// IgnoreFileName is the template name of the git ignore file.
const IgnoreFileName = "_gitignore"

type policyRule struct {
	name   string
	match  func(fileName string) bool
	policy Policy
}

// policyRules is evaluated top to bottom; the first match wins.
var policyRules = []policyRule{
	{
		name:   "manifest",
		match:  func(n string) bool { return n == manifest.FileName },
		policy: PolicyManifest,
	},
	{
		name:   "ignore-file",
		match:  func(n string) bool { return n == IgnoreFileName },
		policy: PolicyAppend,
	},
	{
		name:   "dotfile",
		match:  func(n string) bool { return strings.HasPrefix(n, "_") },
		policy: PolicyDotfile,
	},
}

// PolicyFor returns the policy for a template file name (base name only).
func PolicyFor(fileName string) Policy {
	for _, r := range policyRules {
		if r.match(fileName) {
			return r.policy
		}
	}
	return PolicyCopy
}

// TargetName returns the destination name for a template file name.
// Names starting with an underscore have every underscore replaced by a dot;
// other names are returned unchanged.
func TargetName(fileName string) string {
	if !strings.HasPrefix(fileName, "_") {
		return fileName
	}
	return strings.ReplaceAll(fileName, "_", ".")
}
