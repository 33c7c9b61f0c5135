package eslint

import (
	"strings"

	"github.com/opmodel/create-vue/internal/value"
)

const airbnbEditorConfig = `root = true
[*.{js,jsx,mjs,cjs,ts,tsx,mts,cts,vue}]
charset = utf-8
end_of_line = lf
indent_size = 2
indent_style = space
insert_final_newline = true
max_line_length = 100
trim_trailing_whitespace = true
`

const standardEditorConfig = `root = true

[*.{js,jsx,mjs,cjs,ts,tsx,mts,cts,vue}]
charset = utf-8
indent_size = 2
indent_style = space
insert_final_newline = true
trim_trailing_whitespace = true`

var editorConfigs = map[StyleGuide]string{
	StyleAirbnb:   airbnbEditorConfig,
	StyleStandard: standardEditorConfig,
}

// EditorConfig returns the .editorconfig content for a style guide, or ""
// for the default style guide.
func EditorConfig(style StyleGuide) string {
	return editorConfigs[style]
}

// PrettierConfig returns the formatter settings. Every style guide shares
// the same preset.
func PrettierConfig(StyleGuide) *value.Object {
	o := value.NewObject()
	o.Set("arrowParens", value.String("always"))
	o.Set("bracketSameLine", value.Bool(false))
	o.Set("bracketSpacing", value.Bool(true))
	o.Set("endOfLine", value.String("lf"))
	o.Set("jsxSingleQuote", value.Bool(false))
	o.Set("printWidth", value.Int(100))
	o.Set("proseWrap", value.String("preserve"))
	o.Set("quoteProps", value.String("as-needed"))
	o.Set("semi", value.Bool(true))
	o.Set("singleQuote", value.Bool(true))
	o.Set("tabWidth", value.Int(2))
	o.Set("trailingComma", value.String("all"))
	o.Set("useTabs", value.Bool(false))
	return o
}

// AliasPlaceholder may appear as a plain string element in the lint
// configuration. At render time the quoted token is replaced by a spread of
// the style guide's alias settings.
const AliasPlaceholder = "CREATE_ALIAS_SETTING_PLACEHOLDER"

var aliasSubstitutions = map[StyleGuide]string{
	StyleAirbnb:   "...require('@vue/eslint-config-airbnb/createAliasSetting')",
	StyleStandard: "...require('@vue/eslint-config-standard/createAliasSetting')",
}

// substituteAlias rewrites the quoted placeholder in rendered JavaScript.
// Style guides without an entry leave the text untouched.
func substituteAlias(rendered string, style StyleGuide) string {
	repl, ok := aliasSubstitutions[style]
	if !ok {
		return rendered
	}
	return strings.ReplaceAll(rendered, `"`+AliasPlaceholder+`"`, repl)
}
