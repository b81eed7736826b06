// internal/commands/delete_model.go
package modelhub

import (
	"errors"
	"fmt"

	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/spf13/cobra"
)

// deleteModelCmd implements 'delete model <id>'. It asks for confirmation on
// stdin unless --yes is given.
var deleteModelCmd = &cobra.Command{
	Use:   "model <id>",
	Short: "Delete a model from the registry",
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

		var confirm dashboard.Confirmer = dashboard.PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			confirm = dashboard.Always
		}

		err = ctrl.DeleteModel(cmd.Context(), id, confirm)
		if errors.Is(err, dashboard.ErrDeclined) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		present(cmd, ctrl.Snapshot(), nil, nil)
		return err
	},
}

func init() {
	deleteModelCmd.Flags().BoolP("yes", "y", false, "delete without asking for confirmation")
	deleteCmd.AddCommand(deleteModelCmd)
}
