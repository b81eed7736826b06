// internal/tui/styles.go
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
)

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("255")).Padding(0, 1).MarginLeft(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(17)
	dialogStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 2)
)

// alertColors maps alert severities to the badge colours.
var alertColors = map[dashboard.Severity]lipgloss.Color{
	dashboard.SeveritySuccess: lipgloss.Color("40"),
	dashboard.SeverityWarning: lipgloss.Color("214"),
	dashboard.SeverityDanger:  lipgloss.Color("9"),
}

// renderAlert returns the alert line, or an empty string when no alert is visible.
func renderAlert(alert *dashboard.Alert) string {
	if alert == nil {
		return ""
	}
	color, ok := alertColors[alert.Severity]
	if !ok {
		color = lipgloss.Color("255")
	}
	badge := lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("0")).Padding(0, 1).Render(string(alert.Severity))
	return badge + " " + alert.Message + helpStyle.Render("  (esc to dismiss)")
}

// renderCountsBadge shows the total and trained counts of the summary.
func renderCountsBadge(s dashboard.Summary) string {
	return labelStyle.Render(fmt.Sprintf("Models: %d", s.Total)) +
		labelStyle.Foreground(lipgloss.Color("40")).Render(fmt.Sprintf("Trained: %d", s.Trained))
}

// renderUploadBadge shows which file the next train or predict action sends.
func renderUploadBadge(path string) string {
	label := "Upload: none"
	if path != "" {
		label = "Upload: " + filepath.Base(path)
	}
	return lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1).Render(label)
}

// renderAPIBadge shows the backend the dashboard talks to.
func renderAPIBadge(baseURL string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1).Render("API: " + baseURL)
}
