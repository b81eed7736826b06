// internal/commands/show_summary.go
package modelhub

import (
	"io"

	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// showSummaryCmd implements 'show summary': total and trained counts plus the accuracy chart.
var showSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show model counts and the accuracy chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		err = ctrl.LoadSummary(cmd.Context())
		st := ctrl.Snapshot()
		if err != nil {
			present(cmd, st, nil, nil)
			return err
		}
		present(cmd, st, st.Summary, func(out io.Writer) { report.Summary(out, st.Summary) })
		return nil
	},
}

func init() {
	showCmd.AddCommand(showSummaryCmd)
}
