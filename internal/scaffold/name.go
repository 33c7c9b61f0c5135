package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/opmodel/create-vue/internal/errors"
)

// npm package name, optionally scoped.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	leadingDotOrUS = regexp.MustCompile(`^[._]`)
	invalidRun     = regexp.MustCompile(`[^a-z0-9-~]+`)
)

// IsValidPackageName reports whether name is a valid npm package name.
func IsValidPackageName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// ToValidPackageName derives a package name from a project name.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUS.ReplaceAllString(s, "")
	return invalidRun.ReplaceAllString(s, "-")
}

// ValidatePackageName returns an ErrValidation error for an invalid name.
func ValidatePackageName(name string) error {
	if IsValidPackageName(name) {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid package.json name %q", name),
		"package name",
		fmt.Sprintf("try %q", ToValidPackageName(name)),
	)
}
