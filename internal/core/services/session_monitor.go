package services

import (
	"errors"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// SessionMonitor exports console activity as prometheus metrics.
type SessionMonitor struct {
	registerer          prometheus.Registerer
	sessionsOpen        prometheus.Gauge
	transitionsInFlight prometheus.Gauge
	commands            *prometheus.CounterVec
	transitions         *prometheus.CounterVec
	rejections          *prometheus.CounterVec
}

// NewSessionMonitor registers the collectors with registerer. A nil registerer keeps the
// collectors unregistered, which is what tests want.
func NewSessionMonitor(registerer prometheus.Registerer) *SessionMonitor {
	factory := promauto.With(registerer)

	return &SessionMonitor{
		registerer: registerer,
		sessionsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "druid",
			Subsystem: "console",
			Name:      "sessions_open",
			Help:      "Open console sessions",
		}),
		transitionsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "druid",
			Subsystem: "console",
			Name:      "transitions_in_flight",
			Help:      "Lifecycle transitions currently running",
		}),
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "druid",
			Subsystem: "console",
			Name:      "commands_total",
			Help:      "Console lines by resolution",
		}, []string{"resolution"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "druid",
			Subsystem: "console",
			Name:      "transitions_total",
			Help:      "Finished lifecycle transitions",
		}, []string{"transition", "outcome"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "druid",
			Subsystem: "console",
			Name:      "transitions_rejected_total",
			Help:      "Rejected lifecycle transition requests",
		}, []string{"transition", "reason"}),
	}
}

func (sm *SessionMonitor) SessionOpened() {
	sm.sessionsOpen.Inc()
}

func (sm *SessionMonitor) SessionClosed() {
	sm.sessionsOpen.Dec()
}

func (sm *SessionMonitor) CommandResolved(kind domain.ResolutionKind) {
	sm.commands.With(prometheus.Labels{"resolution": string(kind)}).Inc()
}

func (sm *SessionMonitor) TransitionStarted(kind domain.TransitionKind) {
	sm.transitionsInFlight.Inc()
}

func (sm *SessionMonitor) TransitionFinished(kind domain.TransitionKind, outcome string) {
	sm.transitionsInFlight.Dec()
	sm.transitions.With(prometheus.Labels{"transition": string(kind), "outcome": outcome}).Inc()
}

func (sm *SessionMonitor) TransitionRejected(kind domain.TransitionKind, err error) {
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrTransitionBusy):
		reason = "busy"
	case errors.Is(err, domain.ErrInvalidTransition):
		reason = "invalid"
	}
	sm.rejections.With(prometheus.Labels{"transition": string(kind), "reason": reason}).Inc()
}

func (sm *SessionMonitor) Shutdown() {
	if sm.registerer == nil {
		logger.Log().Warn("No metrics registered, skipping", zap.String(logger.LogKeyContext, logger.LogContextMonitor))
		return
	}
	logger.Log().Info("Shutting down prometheus metrics", zap.String(logger.LogKeyContext, logger.LogContextMonitor))
	sm.registerer.Unregister(sm.sessionsOpen)
	sm.registerer.Unregister(sm.transitionsInFlight)
	sm.registerer.Unregister(sm.commands)
	sm.registerer.Unregister(sm.transitions)
	sm.registerer.Unregister(sm.rejections)
}

type noopMonitor struct{}

func (noopMonitor) SessionOpened() {}
func (noopMonitor) SessionClosed() {}
func (noopMonitor) CommandResolved(domain.ResolutionKind) {}
func (noopMonitor) TransitionStarted(domain.TransitionKind) {}
func (noopMonitor) TransitionFinished(domain.TransitionKind, string) {}
func (noopMonitor) TransitionRejected(domain.TransitionKind, error) {}
