// internal/commands/update.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// updateCmd represents the 'update' command group for updating resources.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Group commands for updating resources",
	Long:  `The 'update' command groups subcommands for updating resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
