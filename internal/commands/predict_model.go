// internal/commands/predict_model.go
package modelhub

import (
	"io"

	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// predictModelCmd implements 'predict model <id> --file input.csv'.
var predictModelCmd = &cobra.Command{
	Use:   "model <id>",
	Short: "Send an input file to a trained model and print its predictions",
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
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			ctrl.SelectUpload(file)
		}

		err = ctrl.Predict(cmd.Context(), id)
		st := ctrl.Snapshot()
		if err != nil {
			present(cmd, st, nil, nil)
			return err
		}
		present(cmd, st, st.Prediction, func(out io.Writer) { report.Predictions(out, st.Prediction) })
		return nil
	},
}

func init() {
	predictModelCmd.Flags().StringP("file", "f", "", "input file to upload")
	predictCmd.AddCommand(predictModelCmd)
}
