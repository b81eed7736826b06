// internal/commands/predict.go
package modelhub

import (
	"github.com/spf13/cobra"
)

// predictCmd represents the 'predict' command group for running predictions.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Group commands for running predictions",
	Long:  `The 'predict' command groups subcommands that run predictions with trained ModelHub models.`,
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
