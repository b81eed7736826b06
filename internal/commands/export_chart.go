// internal/commands/export_chart.go
package modelhub

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/marouane-chirane/ModelHub/internal/chart"
	"github.com/spf13/cobra"
)

// exportChartCmd implements 'export chart --out accuracy.png', which writes
// the accuracy bar chart as a PNG image.
var exportChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write the accuracy chart to a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("out")
		ctrl, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.LoadSummary(cmd.Context()); err != nil {
			present(cmd, ctrl.Snapshot(), nil, nil)
			return err
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := chart.RenderPNG(f, ctrl.Snapshot().Summary.Bars); err != nil {
			f.Close()
			_ = os.Remove(path)
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
		return nil
	},
}

func init() {
	exportChartCmd.Flags().StringP("out", "o", "accuracy.png", "PNG file to write")
	exportCmd.AddCommand(exportChartCmd)
}
