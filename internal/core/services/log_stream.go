package services

import (
	"sync"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
)

const subscriptionBuffer = 256

// LogStream is the ordered, append-only entry log of one console session.
// Append and Reset are serialized by the stream lock, so a Snapshot taken after an
// Append returned always contains that entry.
type LogStream struct {
	mu          sync.Mutex
	entries     []domain.LogEntry
	subscribers map[chan *domain.LogEvent]bool
	closed      bool
	now         func() time.Time
}

func NewLogStream(banner []domain.LogEntry) *LogStream {
	ls := &LogStream{
		subscribers: make(map[chan *domain.LogEvent]bool),
		now:         time.Now,
	}
	ls.entries = ls.stamp(banner)
	return ls
}

func (ls *LogStream) stamp(entries []domain.LogEntry) []domain.LogEntry {
	stamped := make([]domain.LogEntry, len(entries))
	now := ls.now()
	for i, e := range entries {
		if e.Time.IsZero() {
			e.Time = now
		}
		stamped[i] = e
	}
	return stamped
}

func (ls *LogStream) Append(text string, kind domain.EntryKind) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.closed {
		return
	}

	entry := domain.LogEntry{Text: text, Kind: kind, Time: ls.now()}
	ls.entries = append(ls.entries, entry)

	ls.broadcast(&domain.LogEvent{Type: domain.LogEventAppend, Entries: []domain.LogEntry{entry}})
}

// Reset replaces the whole sequence with banner.
func (ls *LogStream) Reset(banner []domain.LogEntry) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.closed {
		return
	}

	ls.entries = ls.stamp(banner)

	ls.broadcast(&domain.LogEvent{Type: domain.LogEventReset, Entries: ls.copyEntries()})
}

func (ls *LogStream) Snapshot() []domain.LogEntry {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return ls.copyEntries()
}

func (ls *LogStream) Len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return len(ls.entries)
}

func (ls *LogStream) copyEntries() []domain.LogEntry {
	result := make([]domain.LogEntry, len(ls.entries))
	copy(result, ls.entries)
	return result
}

// broadcast must be called with the lock held. A subscriber that cannot keep up is dropped
// and its channel closed; it can resync from Snapshot.
func (ls *LogStream) broadcast(event *domain.LogEvent) {
	for subscription := range ls.subscribers {
		select {
		case subscription <- event:
		default:
			delete(ls.subscribers, subscription)
			close(subscription)
		}
	}
}

// Subscribe returns a channel whose first event is a reset carrying the current log,
// followed by every later event. The channel is closed when the stream closes or the
// subscriber falls behind.
func (ls *LogStream) Subscribe() chan *domain.LogEvent {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	subscription := make(chan *domain.LogEvent, subscriptionBuffer)
	if ls.closed {
		close(subscription)
		return subscription
	}
	subscription <- &domain.LogEvent{Type: domain.LogEventReset, Entries: ls.copyEntries()}
	ls.subscribers[subscription] = true
	return subscription
}

func (ls *LogStream) Unsubscribe(subscription chan *domain.LogEvent) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, ok := ls.subscribers[subscription]; !ok {
		return
	}
	delete(ls.subscribers, subscription)
	close(subscription)
}

func (ls *LogStream) SubscriberCount() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	return len(ls.subscribers)
}

// Close stops all further writes and releases the subscribers.
func (ls *LogStream) Close() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.closed {
		return
	}
	ls.closed = true
	for subscription := range ls.subscribers {
		delete(ls.subscribers, subscription)
		close(subscription)
	}
}
