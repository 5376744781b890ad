package ports

import (
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
)

type LogStreamInterface interface {
	Append(text string, kind domain.EntryKind)
	Reset(banner []domain.LogEntry)
	Snapshot() []domain.LogEntry
	Len() int
	Subscribe() chan *domain.LogEvent
	Unsubscribe(subscription chan *domain.LogEvent)
	Close()
}

type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type LifecycleMachineInterface interface {
	State() domain.LifecycleState
	Since() time.Time
	Busy() bool
	Request(kind domain.TransitionKind) error
	Cancel()
}

type MetricsProvider interface {
	Gauges(serverId string) domain.ServerGauges
	PlayerNames(serverId string, count int) []string
}

type SessionMonitorInterface interface {
	SessionOpened()
	SessionClosed()
	CommandResolved(kind domain.ResolutionKind)
	TransitionStarted(kind domain.TransitionKind)
	TransitionFinished(kind domain.TransitionKind, outcome string)
	TransitionRejected(kind domain.TransitionKind, err error)
}

type ConsoleSessionInterface interface {
	Info() domain.SessionInfo
	Submit(rawLine string) error
	Snapshot() []domain.LogEntry
	State() domain.LifecycleState
	Subscribe() chan *domain.LogEvent
	Unsubscribe(subscription chan *domain.LogEvent)
	LastActivity() time.Time
	Close()
}

type SessionManagerInterface interface {
	Open(serverId string, serverName string) (*domain.SessionInfo, error)
	Get(handle string) (*domain.SessionInfo, error)
	List() []domain.SessionInfo
	Submit(handle string, rawLine string) error
	Snapshot(handle string) ([]domain.LogEntry, error)
	CurrentState(handle string) (domain.LifecycleState, error)
	Subscribe(handle string) (chan *domain.LogEvent, error)
	Unsubscribe(handle string, subscription chan *domain.LogEvent)
	Close(handle string) error
	CloseAll()
}
