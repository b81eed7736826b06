// internal/commands/list_models.go
package modelhub

import (
	"io"

	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// listModelsCmd implements 'list models', which prints one card per model
// registered on the backend, in server order.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List all models in the registry",
	Long:  `The 'models' subcommand lists every model of the registry with its framework, training status, accuracy and description.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		err = ctrl.LoadModelList(cmd.Context())
		st := ctrl.Snapshot()
		if err != nil {
			present(cmd, st, nil, nil)
			return err
		}
		present(cmd, st, st.Cards, func(out io.Writer) { report.Cards(out, st.Cards) })
		return nil
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}
