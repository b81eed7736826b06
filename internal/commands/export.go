// internal/commands/export.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// exportCmd represents the 'export' command group for exporting resources.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Group commands for exporting resources",
	Long:  `The 'export' command groups subcommands for exporting resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
