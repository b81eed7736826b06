// internal/commands/delete.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// deleteCmd represents the 'delete' command group for deleting resources.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Group commands for deleting resources",
	Long:  `The 'delete' command groups subcommands for deleting resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
