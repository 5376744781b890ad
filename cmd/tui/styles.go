package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/highcard-dev/console/internal/core/domain"
)

var (
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	runningDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	stoppedDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("●")
)

// RenderEntry colours one log entry by its kind.
func RenderEntry(entry domain.LogEntry) string {
	switch entry.Kind {
	case domain.EntryKindCommand:
		return commandStyle.Render(entry.Text)
	case domain.EntryKindError:
		return errorStyle.Render(entry.Text)
	case domain.EntryKindSuccess:
		return successStyle.Render(entry.Text)
	default:
		return outputStyle.Render(entry.Text)
	}
}

// ApplyEvent folds a log event into a rendered copy of the log.
func ApplyEvent(entries []domain.LogEntry, event *domain.LogEvent) []domain.LogEntry {
	if event.Type == domain.LogEventReset {
		return append([]domain.LogEntry{}, event.Entries...)
	}
	return append(entries, event.Entries...)
}
