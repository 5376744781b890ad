package domain

import "time"

type EntryKind string

const (
	EntryKindCommand EntryKind = "command"
	EntryKindOutput  EntryKind = "output"
	EntryKindError   EntryKind = "error"
	EntryKindSuccess EntryKind = "success"
)

// LogEntry is one line of a console log. Entries are values and never change after they
// have been appended to a stream.
type LogEntry struct {
	Text string    `json:"text"`
	Kind EntryKind `json:"type" validate:"required"`
	Time time.Time `json:"time"`
} //@name LogEntry

func NewEntry(text string, kind EntryKind) LogEntry {
	return LogEntry{Text: text, Kind: kind}
}

type LogEventType string

const (
	LogEventAppend LogEventType = "append"
	LogEventReset  LogEventType = "reset"
)

// LogEvent is pushed to stream subscribers. An append event carries the single new entry,
// a reset event carries the complete replacement sequence.
type LogEvent struct {
	Type    LogEventType `json:"event"`
	Entries []LogEntry   `json:"entries"`
} //@name LogEvent
