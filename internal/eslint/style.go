// Package eslint synthesizes the lint configuration of a generated project:
// the .eslintrc rule file, the matching dev dependencies and the optional
// .editorconfig and .prettierrc companions.
package eslint

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/create-vue/internal/errors"
)

// StyleGuide selects a preset of rule-set extensions and editor/formatter defaults.
type StyleGuide int

const (
	StyleDefault StyleGuide = iota
	StyleAirbnb
	StyleStandard
)

var styleNames = map[StyleGuide]string{
	StyleDefault:  "default",
	StyleAirbnb:   "airbnb",
	StyleStandard: "standard",
}

// String returns the lower-case style guide name.
func (s StyleGuide) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("StyleGuide(%d)", int(s))
}

// StyleGuideNames lists the accepted style guide names in display order.
func StyleGuideNames() []string {
	return []string{"default", "airbnb", "standard"}
}

// ParseStyleGuide parses a style guide name, case-insensitively.
// An empty name selects the default style guide.
func ParseStyleGuide(name string) (StyleGuide, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return StyleDefault, nil
	}
	for s, sn := range styleNames {
		if sn == n {
			return s, nil
		}
	}
	return StyleDefault, oerrors.NewValidationError(
		fmt.Sprintf("unknown style guide %q", name),
		"--style",
		"use one of: "+strings.Join(StyleGuideNames(), ", "),
	)
}

// Language is the source language axis of the rule table.
type Language int

const (
	LanguageJavaScript Language = iota
	LanguageTypeScript
)

// LanguageFor maps the type-checking switch onto the language axis.
func LanguageFor(typeScript bool) Language {
	if typeScript {
		return LanguageTypeScript
	}
	return LanguageJavaScript
}

func (l Language) String() string {
	if l == LanguageTypeScript {
		return "typescript"
	}
	return "javascript"
}
