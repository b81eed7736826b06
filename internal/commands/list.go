// internal/commands/list.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group for listing resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands for listing resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
