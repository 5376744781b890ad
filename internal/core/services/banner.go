package services

import (
	"fmt"

	"github.com/highcard-dev/console/internal/core/domain"
)

// OpeningBanner is the log a fresh session starts with.
func OpeningBanner(serverId string, serverName string) []domain.LogEntry {
	return []domain.LogEntry{
		domain.NewEntry(fmt.Sprintf("Connecting to %s (%s)...", serverName, serverId), domain.EntryKindOutput),
		domain.NewEntry(fmt.Sprintf("Welcome to %s Console", serverName), domain.EntryKindSuccess),
		domain.NewEntry("Server started.", domain.EntryKindSuccess),
		domain.NewEntry("Available commands: .op, restart, stop, help", domain.EntryKindOutput),
		domain.NewEntry("", domain.EntryKindOutput),
	}
}

// ClearBanner is what the clear command leaves behind.
func ClearBanner(serverName string) []domain.LogEntry {
	return []domain.LogEntry{
		domain.NewEntry(fmt.Sprintf("Welcome to %s Console", serverName), domain.EntryKindSuccess),
		domain.NewEntry(helpHint, domain.EntryKindOutput),
	}
}
