package eslint

// Rule-set identifiers used in the extends array.
const (
	ExtendVueEssential = "plugin:vue/essential"
	ExtendRecommended  = "eslint:recommended"
	ExtendPrettier     = PkgConfigPrettier
	ExtendCypress      = "plugin:cypress/recommended"
	ExtendTypeScript   = PkgConfigTS
	ExtendAirbnb       = PkgConfigAirbnb
	ExtendAirbnbTS     = PkgConfigAirbnbTS
	ExtendStandard     = PkgConfigStandard
	ExtendStandardTS   = PkgConfigStandardTS
)

type ruleKey struct {
	style StyleGuide
	lang  Language
}

// ruleSet is what one (style guide, language) combination contributes.
type ruleSet struct {
	extends []string
	deps    []string
}

var ruleTable = map[ruleKey]ruleSet{
	{StyleDefault, LanguageTypeScript}: {
		extends: []string{ExtendRecommended, ExtendTypeScript},
		deps:    []string{PkgConfigTS},
	},
	{StyleDefault, LanguageJavaScript}: {
		extends: []string{ExtendRecommended},
	},
	{StyleAirbnb, LanguageJavaScript}: {
		extends: []string{ExtendAirbnb},
		deps:    []string{PkgConfigAirbnb},
	},
	{StyleStandard, LanguageJavaScript}: {
		extends: []string{ExtendStandard},
		deps:    []string{PkgConfigStandard},
	},
	{StyleAirbnb, LanguageTypeScript}: {
		extends: []string{ExtendAirbnbTS},
		deps:    []string{PkgConfigAirbnbTS},
	},
	{StyleStandard, LanguageTypeScript}: {
		extends: []string{ExtendStandardTS},
		deps:    []string{PkgConfigStandardTS},
	},
}

// rulesFor returns the contribution of a combination. Combinations missing
// from the table contribute nothing.
func rulesFor(style StyleGuide, lang Language) ruleSet {
	return ruleTable[ruleKey{style, lang}]
}

// needsPatch reports whether the module-resolution patch is required.
func needsPatch(style StyleGuide, typeScript, prettier bool) bool {
	return style != StyleDefault && (typeScript || prettier)
}

// referencedPackages lists every package name the synthesizer can add.
func referencedPackages() []string {
	names := []string{PkgESLint, PkgPluginVue, PkgPatch, PkgPrettier, PkgConfigPrettier}
	for _, rs := range ruleTable {
		names = append(names, rs.deps...)
	}
	return names
}
