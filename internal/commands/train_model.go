// internal/commands/train_model.go
package modelhub

import (
	"io"

	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// trainModelCmd implements 'train model <id> --file data.csv'.
var trainModelCmd = &cobra.Command{
	Use:   "model <id>",
	Short: "Upload a training data file and train a model",
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
		file, _ := cmd.Flags().GetString("file")
		if file != "" {
			ctrl.SelectUpload(file)
		}

		err = ctrl.TrainModel(cmd.Context(), id)
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
	trainModelCmd.Flags().StringP("file", "f", "", "training data file to upload")
	trainCmd.AddCommand(trainModelCmd)
}
