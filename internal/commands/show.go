// internal/commands/show.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands for displaying resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
