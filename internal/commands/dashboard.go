// internal/commands/dashboard.go
package modelhub

import (
	"github.com/marouane-chirane/ModelHub/internal/tui"
	"github.com/spf13/cobra"
)

// startDashboard is a function alias to tui.Start for running the interactive dashboard.
var startDashboard = tui.Start

// dashboardCmd represents the 'dashboard' command, which opens the interactive dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long:  `The 'dashboard' command opens the terminal dashboard: summary counts, the accuracy chart, one card per model, and the create, train, predict and delete actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startDashboard(cmd.Context(), GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
