// internal/commands/create.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// createCmd represents the 'create' command group for creating resources.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Group commands for creating resources",
	Long:  `The 'create' command groups subcommands for creating resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(createCmd)
}
