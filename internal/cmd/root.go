package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opmodel/create-vue/internal/cmdutil"
	"github.com/opmodel/create-vue/internal/config"
	"github.com/opmodel/create-vue/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (loaded during PersistentPreRunE)
	appConfig *config.Config
)

// NewRootCmd creates the root command. Run without a subcommand it
// scaffolds a new project.
func NewRootCmd() *cobra.Command {
	rootCmd := newCreateCmd()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initializeGlobals(cmd)
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CREATE_VUE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := cmdutil.FlagAliases[name]; ok {
			name = canonical
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.AddCommand(NewESLintCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return reportError(err)
	}

	// Defaults are not applied here so resolvers can tell an unset value
	// from a configured one.
	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		// Commands that don't need config keep working.
		output.Debug("config load error", "error", err)
		loaded = &config.Config{}
	}
	appConfig = loaded

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// flag (if explicitly set) > config > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if appConfig.Log.Timestamps != nil {
		logCfg.Timestamps = appConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)
	config.LogResolvedValues(configPath)

	return nil
}

// GetConfig returns the loaded configuration, or an empty one before
// PersistentPreRunE has run.
func GetConfig() *config.Config {
	if appConfig == nil {
		return &config.Config{}
	}
	return appConfig
}

// GetConfigPath returns the raw --config flag value.
func GetConfigPath() string {
	return configFlag
}
