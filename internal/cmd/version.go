package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/create-vue/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-vue version information.

Displays the version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return err
		},
	}
}
