// internal/commands/create_model.go
package modelhub

import (
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/spf13/cobra"
)

// createModelCmd implements 'create model', which registers a new model from flags.
var createModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Register a new model",
	Long:  `The 'model' subcommand registers a new model. Hyperparameters are a JSON object; leave them out for an empty object.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var form dashboard.Form
		form.Name, _ = flags.GetString("name")
		form.Type, _ = flags.GetString("type")
		form.Framework, _ = flags.GetString("framework")
		form.Description, _ = flags.GetString("description")
		form.Hyperparameters, _ = flags.GetString("hyperparameters")

		ctrl, err := newController()
		if err != nil {
			return err
		}
		err = ctrl.CreateModel(cmd.Context(), &form)
		st := ctrl.Snapshot()
		var data any
		if err == nil && len(st.Cards) > 0 {
			data = st.Cards[len(st.Cards)-1]
		}
		present(cmd, st, data, nil)
		return err
	},
}

func init() {
	createModelCmd.Flags().String("name", "", "model name")
	createModelCmd.Flags().String("type", "", "model type, e.g. classification")
	createModelCmd.Flags().String("framework", "", "framework, e.g. scikit-learn")
	createModelCmd.Flags().String("description", "", "free-text description")
	createModelCmd.Flags().String("hyperparameters", "", `hyperparameters as a JSON object, e.g. '{"n_estimators": 100}'`)
	createCmd.AddCommand(createModelCmd)
}
