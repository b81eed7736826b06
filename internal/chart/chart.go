// internal/chart/chart.go
// Package chart draws the accuracy bar chart of the dashboard.
package chart

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/marouane-chirane/ModelHub/internal/api"
	"github.com/marouane-chirane/ModelHub/internal/util"
)

// Bar is one model's accuracy on the [0,1] scale.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// EmptyText is rendered when there is nothing to chart.
const EmptyText = "No models to chart"

const (
	minBarWidth   = 10
	maxLabelWidth = 20
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Bars maps each model, in order, to its accuracy bar. Missing metrics or a
// missing accuracy value give a zero bar.
func Bars(models []api.Model) []Bar {
	bars := make([]Bar, 0, len(models))
	for _, m := range models {
		bars = append(bars, Bar{Label: m.Name, Value: clamp(m.Accuracy())})
	}
	return bars
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RenderText draws one horizontal bar per entry within width columns.
func RenderText(bars []Bar, width int) string {
	if len(bars) == 0 {
		return trackStyle.Render(EmptyText)
	}

	labelWidth := 0
	for _, b := range bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
	}
	labelWidth = min(labelWidth, maxLabelWidth)

	// label, space, bar, space, "100.0%"
	barWidth := max(width-labelWidth-8, minBarWidth)

	var sb strings.Builder
	for i, b := range bars {
		label := b.Label
		if utf8.RuneCountInString(label) > labelWidth {
			label = util.TruncateRunes(label, labelWidth-1)
		}
		filled := int(math.Round(b.Value * float64(barWidth)))
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)))
		sb.WriteByte(' ')
		sb.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		sb.WriteString(trackStyle.Render(strings.Repeat("░", barWidth-filled)))
		sb.WriteString(fmt.Sprintf(" %5.1f%%", b.Value*100))
		if i < len(bars)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
