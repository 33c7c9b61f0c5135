// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-vue configuration.
// Loaded from ~/.create-vue/config.yaml.
type Config struct {
	// StyleGuide is the lint style guide used when --style is not given.
	// Env: CREATE_VUE_STYLE_GUIDE, Default: "default"
	StyleGuide string `mapstructure:"styleGuide" yaml:"styleGuide,omitempty"`

	// TemplateDir replaces the embedded templates with an on-disk template root.
	// Env: CREATE_VUE_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultStyleGuide is the style guide used when nothing else selects one.
const DefaultStyleGuide = "default"

// DefaultConfig returns a Config with all default values populated.
// Used by `create-vue config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		StyleGuide: DefaultStyleGuide,
		Log:        LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.StyleGuide == "" {
		out.StyleGuide = def.StyleGuide
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}
