// internal/commands/output.go
package modelhub

import (
	"fmt"
	"io"
	"strconv"

	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/marouane-chirane/ModelHub/internal/report"
	"github.com/spf13/cobra"
)

// newService is a function alias so tests can swap the backend client.
var newService = func(cfg *appconfig.Config) dashboard.ModelService {
	return api.New(cfg)
}

// commandResult is the JSON shape printed in JSON mode.
type commandResult struct {
	Alert *dashboard.Alert `json:"alert,omitempty"`
	Data  any              `json:"data,omitempty"`
}

// newController builds a controller for one command run.
func newController() (*dashboard.Controller, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration is not loaded")
	}
	return dashboard.New(newService(cfg), dashboard.Options{AlertWindow: cfg.AlertWindow()}), nil
}

// present prints the result of an operation: JSON in JSON mode, otherwise the
// human view followed by the alert. Debug mode also dumps the raw data.
func present(cmd *cobra.Command, st dashboard.State, data any, human func(out io.Writer)) {
	out := cmd.OutOrStdout()
	cfg := GetConfig()
	if cfg != nil && cfg.JSONMode {
		_ = report.JSON(out, commandResult{Alert: st.Alert, Data: data})
		return
	}
	if cfg != nil && cfg.Debug && data != nil {
		report.Dump(out, data)
	}
	if human != nil {
		human(out)
	}
	report.Alert(out, st.Alert)
}

// parseModelID converts a positional argument into a model id.
func parseModelID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid model id %q", arg)
	}
	return id, nil
}
