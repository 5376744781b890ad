package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/services"
)

func TestApplyEvent(t *testing.T) {
	entries := ApplyEvent(nil, &domain.LogEvent{
		Type:    domain.LogEventReset,
		Entries: []domain.LogEntry{domain.NewEntry("banner", domain.EntryKindSuccess)},
	})
	entries = ApplyEvent(entries, &domain.LogEvent{
		Type:    domain.LogEventAppend,
		Entries: []domain.LogEntry{domain.NewEntry("$ help", domain.EntryKindCommand)},
	})

	if len(entries) != 2 || entries[1].Text != "$ help" {
		t.Fatalf("Expected banner and echo, got %+v", entries)
	}

	entries = ApplyEvent(entries, &domain.LogEvent{Type: domain.LogEventReset})
	if len(entries) != 0 {
		t.Errorf("Expected reset to empty the view, got %d entries", len(entries))
	}
}

func TestRenderEntryKeepsText(t *testing.T) {
	for _, kind := range []domain.EntryKind{domain.EntryKindCommand, domain.EntryKindOutput, domain.EntryKindError, domain.EntryKindSuccess} {
		rendered := RenderEntry(domain.NewEntry("Server stopped.", kind))
		if !strings.Contains(rendered, "Server stopped.") {
			t.Errorf("Expected rendered %s entry to contain its text, got %q", kind, rendered)
		}
	}
}

func TestConsoleViewSubmitsOnEnter(t *testing.T) {
	session, err := services.OpenSession("srv-1", "Alpha", services.SessionOptions{})
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	defer session.Close()

	view := NewConsoleView(session)
	for _, r := range "say hi" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	snapshot := session.Snapshot()
	if got := snapshot[len(snapshot)-2].Text; got != "[Server] hi" {
		t.Errorf("Expected the line to be submitted, got %q", got)
	}
	if !strings.Contains(view.View(), "Console - Alpha") {
		t.Errorf("Expected the header to name the server")
	}
}

func TestConsoleViewForwardsCursorBlink(t *testing.T) {
	session, err := services.OpenSession("srv-1", "Alpha", services.SessionOptions{})
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	defer session.Close()

	view := NewConsoleView(session)
	before := view.input.Cursor.Blink

	blink := view.input.Cursor.BlinkCmd()()
	_, cmd := view.Update(blink)

	if view.input.Cursor.Blink == before {
		t.Errorf("Expected the input cursor to toggle on a blink message")
	}
	if cmd == nil {
		t.Errorf("Expected the next blink to be scheduled")
	}
}
