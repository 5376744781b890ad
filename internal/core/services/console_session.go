package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils/logger"
	"go.uber.org/zap"
)

type SessionOptions struct {
	Plans     map[domain.TransitionKind]domain.StepPlan
	Scheduler ports.Scheduler
	Metrics   ports.MetricsProvider
	Monitor   ports.SessionMonitorInterface
}

// ConsoleSession binds one log stream, one lifecycle machine and one interpreter to a
// server identity. Nothing of a session is shared with any other session.
type ConsoleSession struct {
	mu           sync.Mutex
	info         domain.SessionInfo
	logStream    *LogStream
	machine      *LifecycleMachine
	interpreter  *CommandInterpreter
	monitor      ports.SessionMonitorInterface
	lastActivity time.Time
	closed       bool
}

func OpenSession(serverId string, serverName string, options SessionOptions) (*ConsoleSession, error) {
	if serverId == "" || serverName == "" {
		return nil, domain.ErrInvalidIdentity
	}
	if options.Metrics == nil {
		options.Metrics = NewSimulatedMetricsProvider()
	}
	if options.Monitor == nil {
		options.Monitor = noopMonitor{}
	}

	openedAt := time.Now()
	logStream := NewLogStream(OpeningBanner(serverId, serverName))

	machineOpts := []LifecycleOption{
		WithMonitor(options.Monitor),
		WithRunningSince(openedAt.Add(-options.Metrics.Gauges(serverId).Uptime)),
	}
	if options.Plans != nil {
		machineOpts = append(machineOpts, WithStepPlans(options.Plans))
	}
	if options.Scheduler != nil {
		machineOpts = append(machineOpts, WithScheduler(options.Scheduler))
	}
	machine := NewLifecycleMachine(serverId, logStream, machineOpts...)

	session := &ConsoleSession{
		info: domain.SessionInfo{
			Handle:     uuid.NewString(),
			ServerId:   serverId,
			ServerName: serverName,
			OpenedAt:   openedAt,
		},
		logStream:    logStream,
		machine:      machine,
		interpreter:  NewCommandInterpreter(serverId, serverName, openedAt, logStream, machine, options.Metrics, options.Monitor),
		monitor:      options.Monitor,
		lastActivity: openedAt,
	}
	session.monitor.SessionOpened()

	logger.Log().Info("Console session opened",
		zap.String(logger.LogKeyContext, logger.LogContextSession),
		zap.String(logger.LogKeySession, session.info.Handle),
		zap.String(logger.LogKeyServer, serverId),
	)

	return session, nil
}

func (s *ConsoleSession) Info() domain.SessionInfo {
	info := s.info
	info.State = s.machine.State()
	return info
}

// Submit executes one raw line. Lines of concurrent callers are executed one after another.
func (s *ConsoleSession) Submit(rawLine string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	s.lastActivity = time.Now()
	s.interpreter.Execute(rawLine)
	return nil
}

func (s *ConsoleSession) Snapshot() []domain.LogEntry {
	s.touch()
	return s.logStream.Snapshot()
}

// State is frozen after Close: a transition cancelled by Close keeps its transient state.
func (s *ConsoleSession) State() domain.LifecycleState {
	return s.machine.State()
}

func (s *ConsoleSession) Resolve(rawLine string) domain.Resolution {
	return s.interpreter.Resolve(rawLine)
}

func (s *ConsoleSession) Subscribe() chan *domain.LogEvent {
	s.touch()
	return s.logStream.Subscribe()
}

func (s *ConsoleSession) Unsubscribe(subscription chan *domain.LogEvent) {
	s.touch()
	s.logStream.Unsubscribe(subscription)
}

func (s *ConsoleSession) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
}

func (s *ConsoleSession) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Watched reports whether someone is subscribed to the log right now.
func (s *ConsoleSession) Watched() bool {
	return s.logStream.SubscriberCount() > 0
}

// Close cancels any in-flight transition and releases the log. After Close returns the log
// never changes again.
func (s *ConsoleSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.machine.Cancel()
	s.logStream.Close()
	s.monitor.SessionClosed()

	logger.Log().Info("Console session closed",
		zap.String(logger.LogKeyContext, logger.LogContextSession),
		zap.String(logger.LogKeySession, s.info.Handle),
		zap.String(logger.LogKeyServer, s.info.ServerId),
	)
}
