package cli

import (
	"fmt"
	"strings"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

// Style definitions shared across commands.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	circularStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	statusPlanned    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	statusBlockedSt  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusDropped    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderStatus colors a status value for terminal output.
func renderStatus(status models.TaskStatus) string {
	return colorizeStatus(status, string(status))
}

// colorizeStatus applies the status color to an already-formatted string.
func colorizeStatus(status models.TaskStatus, text string) string {
	switch status {
	case models.StatusPlanned:
		return statusPlanned.Render(text)
	case models.StatusInProgress:
		return statusInProgress.Render(text)
	case models.StatusBlocked:
		return statusBlockedSt.Render(text)
	case models.StatusDone:
		return statusDone.Render(text)
	case models.StatusDropped:
		return statusDropped.Render(text)
	default:
		return text
	}
}

// renderFinding colors a validation finding by type.
func renderFinding(f models.Finding) string {
	label := string(f.Type)
	switch f.Type {
	case models.FindingCircular:
		label = circularStyle.Render(label)
	case models.FindingMissingTask:
		label = missingStyle.Render(label)
	case models.FindingInvalidReference:
		label = advisoryStyle.Render(label)
	}
	return fmt.Sprintf("  [%s] %s", label, f.Message)
}

// renderTaskTable renders tasks as a fixed-column table in the given order.
func renderTaskTable(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-4s %-12s %-12s %s", "ID", "PRI", "TYPE", "STATUS", "TITLE")))
	b.WriteString("\n")
	for _, t := range tasks {
		// Pad before coloring so ANSI escapes don't skew the column width.
		paddedStatus := fmt.Sprintf("%-12s", string(t.Status))
		b.WriteString(fmt.Sprintf("%-6s %-4s %-12s %s %s\n",
			t.ID, t.Priority, t.Type, colorizeStatus(t.Status, paddedStatus), t.Title))
	}
	return strings.TrimRight(b.String(), "\n")
}
