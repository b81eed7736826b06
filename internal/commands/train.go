// internal/commands/train.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// trainCmd represents the 'train' command group for training resources.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Group commands for training resources",
	Long:  `The 'train' command groups subcommands for training resources of the ModelHub registry.`,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}
