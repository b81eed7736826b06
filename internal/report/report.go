// internal/report/report.go
// Package report prints dashboard state for the non-interactive commands.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/chart"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
	"github.com/marouane-chirane/ModelHub/internal/util"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	warningText = color.New(color.FgYellow).SprintFunc()
	dangerText  = color.New(color.FgRed, color.Bold).SprintFunc()
	mutedText   = color.New(color.FgHiBlack).SprintFunc()
)

// chartWidth is the line width of the text chart printed by Summary.
const chartWidth = 72

// Alert prints a to out coloured by severity. A nil alert prints nothing.
func Alert(out io.Writer, a *dashboard.Alert) {
	if a == nil {
		return
	}
	var tag string
	switch a.Severity {
	case dashboard.SeveritySuccess:
		tag = successText("[success]")
	case dashboard.SeverityWarning:
		tag = warningText("[warning]")
	default:
		tag = dangerText("[danger]")
	}
	fmt.Fprintf(out, "%s %s\n", tag, a.Message)
}

// Cards prints one block per card in list order.
func Cards(out io.Writer, cards []dashboard.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(out, "No models found.")
		return
	}
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	for _, c := range cards {
		status := mutedText("untrained")
		if c.Trained {
			status = successText(fmt.Sprintf("trained, accuracy %.1f%%", c.Accuracy*100))
		}
		fmt.Fprintf(out, "%s  #%d\n", nameStyle.Render(c.Name), c.ModelID)
		fmt.Fprintf(out, "  %s · %s\n", c.Framework, status)
		fmt.Fprintln(out, util.Indent(util.WrapToWidth(c.Description, chartWidth-2), "  "))
	}
}

// Summary prints the counts and the accuracy chart.
func Summary(out io.Writer, s dashboard.Summary) {
	fmt.Fprintf(out, "Total models:   %d\n", s.Total)
	fmt.Fprintf(out, "Trained models: %d\n\n", s.Trained)
	fmt.Fprintln(out, chart.RenderText(s.Bars, chartWidth))
}

// Model prints every field of one model.
func Model(out io.Writer, m api.Model) {
	fmt.Fprintf(out, "ID:          %d\n", m.ID)
	fmt.Fprintf(out, "Name:        %s\n", m.Name)
	fmt.Fprintf(out, "Type:        %s\n", m.Type)
	fmt.Fprintf(out, "Framework:   %s\n", m.Framework)
	desc := m.Description
	if desc == "" {
		desc = dashboard.NoDescription
	}
	fmt.Fprintf(out, "Description: %s\n", desc)
	if m.CreatedAt != nil {
		fmt.Fprintf(out, "Created:     %s (%s)\n", m.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(*m.CreatedAt))
	}
	fmt.Fprintln(out, "Hyperparameters:")
	values(out, m.Hyperparameters, "none")
	fmt.Fprintln(out, "Metrics:")
	if m.Metrics == nil {
		fmt.Fprintln(out, "  not trained")
		return
	}
	values(out, m.Metrics, "none")
}

// Predictions prints the predictions returned for a model.
func Predictions(out io.Writer, p *dashboard.Prediction) {
	if p == nil {
		return
	}
	fmt.Fprintf(out, "Predictions from model %d (%d):\n", p.ModelID, len(p.Values))
	for i, v := range p.Values {
		fmt.Fprintf(out, "  %d: %v\n", i+1, v)
	}
}

// JSON writes v as indented JSON.
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Dump pretty-prints v for debugging.
func Dump(out io.Writer, v any) {
	_, _ = pp.Fprintln(out, v)
}

func values(out io.Writer, m map[string]any, empty string) {
	if len(m) == 0 {
		fmt.Fprintf(out, "  %s\n", empty)
		return
	}
	width := 0
	for k := range m {
		width = max(width, len(k))
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		raw, err := json.Marshal(m[k])
		if err != nil {
			raw = []byte(fmt.Sprint(m[k]))
		}
		fmt.Fprintf(out, "  %s%s  %s\n", k, strings.Repeat(" ", width-len(k)), raw)
	}
}
