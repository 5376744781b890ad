package services_test

import (
	"sync"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
)

// manualScheduler queues continuations until the test fires them.
type manualScheduler struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	scheduler *manualScheduler
	delay     time.Duration
	f         func()
	stopped   bool
}

func (t *manualTimer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	wasPending := !t.stopped
	t.stopped = true
	return wasPending
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{scheduler: s, delay: d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Fire runs the oldest pending continuation and reports whether there was one.
func (s *manualScheduler) Fire() bool {
	s.mu.Lock()
	for len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		if t.stopped {
			continue
		}
		t.stopped = true
		s.mu.Unlock()
		t.f()
		return true
	}
	s.mu.Unlock()
	return false
}

func (s *manualScheduler) FireAll() int {
	fired := 0
	for s.Fire() {
		fired++
	}
	return fired
}

func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *manualScheduler) NextDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.pending {
		if !t.stopped {
			return t.delay
		}
	}
	return -1
}

type fixedMetrics struct {
	gauges domain.ServerGauges
}

func (f fixedMetrics) Gauges(string) domain.ServerGauges {
	return f.gauges
}

func (f fixedMetrics) PlayerNames(_ string, count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = "player"
	}
	return names
}

func defaultGauges() domain.ServerGauges {
	return domain.ServerGauges{
		Uptime:        15*24*time.Hour + 7*time.Hour,
		CpuPercent:    23,
		MemoryUsed:    2 << 30,
		MemoryTotal:   8 << 30,
		PlayersOnline: 3,
		MaxPlayers:    20,
	}
}

func texts(entries []domain.LogEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Text
	}
	return result
}

func kinds(entries []domain.LogEntry) []domain.EntryKind {
	result := make([]domain.EntryKind, len(entries))
	for i, e := range entries {
		result[i] = e.Kind
	}
	return result
}
