// internal/commands/update_model.go
package modelhub

import (
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/spf13/cobra"
)

// updateModelCmd implements 'update model <id>'. Only the flags given on the
// command line are sent.
var updateModelCmd = &cobra.Command{
	Use:   "model <id>",
	Short: "Update the name, type, description or hyperparameters of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseModelID(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		var patch api.ModelUpdate
		for name, dst := range map[string]**string{
			"name":        &patch.Name,
			"type":        &patch.Type,
			"description": &patch.Description,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*dst = &v
			}
		}
		if flags.Changed("hyperparameters") {
			text, _ := flags.GetString("hyperparameters")
			params, err := dashboard.ParseHyperparameters(text)
			if err != nil {
				return err
			}
			patch.Hyperparameters = params
		}

		ctrl, err := newController()
		if err != nil {
			return err
		}
		err = ctrl.UpdateModel(cmd.Context(), id, patch)
		present(cmd, ctrl.Snapshot(), nil, nil)
		return err
	},
}

func init() {
	updateModelCmd.Flags().String("name", "", "new model name")
	updateModelCmd.Flags().String("type", "", "new model type")
	updateModelCmd.Flags().String("description", "", "new description")
	updateModelCmd.Flags().String("hyperparameters", "", "replacement hyperparameters as a JSON object")
	updateCmd.AddCommand(updateModelCmd)
}
