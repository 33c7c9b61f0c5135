package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/create-vue/internal/config"
	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the create-vue configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. styleGuide names a known style guide
  4. templateDir, when set, is an existing directory

The config path is resolved using precedence:
  --config flag > CREATE_VUE_CONFIG env > ~/.create-vue/config.yaml

Examples:
  # Validate default configuration
  create-vue config vet

  # Validate custom config path
  create-vue config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return reportError(runConfigVet(c))
		},
	}
}

func runConfigVet(c *cobra.Command) error {
	resolved, err := config.ResolveConfigPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	configPath, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config",
		"path", configPath,
		"source", resolved.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'create-vue config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configPath)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.Validate(cfg); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+configPath))
	return nil
}
