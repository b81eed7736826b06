// internal/commands/show_model.go
package modelhub

import (
	"io"

	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// showModelCmd implements 'show model <id>', which prints one model in full.
var showModelCmd = &cobra.Command{
	Use:   "model <id>",
	Short: "Show one model with its hyperparameters and metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseModelID(args[0])
		if err != nil {
			return err
		}
		ctrl, err := newController()
		if err != nil {
			return err
		}
		err = ctrl.ShowModel(cmd.Context(), id)
		st := ctrl.Snapshot()
		if err != nil || st.Detail == nil {
			present(cmd, st, nil, nil)
			return err
		}
		present(cmd, st, st.Detail, func(out io.Writer) { report.Model(out, *st.Detail) })
		return nil
	},
}

func init() {
	showCmd.AddCommand(showModelCmd)
}
