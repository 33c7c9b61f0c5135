package config

import (
	"os"

	"github.com/opmodel/create-vue/internal/eslint"
	"github.com/opmodel/create-vue/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one configuration value was resolved.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CREATE_VUE_CONFIG env, (3) ~/.create-vue/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(envPrefix + "_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveStyleGuide resolves the lint style guide using precedence:
// (1) --style flag, (2) styleGuide from config or CREATE_VUE_STYLE_GUIDE,
// (3) "default". An unknown name is a validation error.
func ResolveStyleGuide(flagValue string, cfg *Config) (eslint.StyleGuide, ResolvedValue, error) {
	rv := ResolvedValue{
		Key:      "styleGuide",
		Shadowed: make(map[ConfigSource]string),
	}

	var cfgValue string
	if cfg != nil {
		cfgValue = cfg.StyleGuide
	}

	switch {
	case flagValue != "":
		rv.Value = flagValue
		rv.Source = SourceFlag
		if cfgValue != "" {
			rv.Shadowed[SourceConfig] = cfgValue
		}
	case cfgValue != "":
		rv.Value = cfgValue
		rv.Source = SourceConfig
	default:
		rv.Value = DefaultStyleGuide
		rv.Source = SourceDefault
	}

	style, err := eslint.ParseStyleGuide(rv.Value)
	return style, rv, err
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
