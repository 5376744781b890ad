package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	TransitionOutcomeCompleted = "completed"
	TransitionOutcomeFailed    = "failed"
	TransitionOutcomeCancelled = "cancelled"
)

// transition is the in-flight part of the machine: the plan being executed, the index of
// the next step and the timer that will fire it.
type transition struct {
	plan   domain.StepPlan
	next   int
	timer  ports.Timer
	ctx    context.Context
	cancel context.CancelFunc
}

type LifecycleMachine struct {
	mu        sync.Mutex
	serverId  string
	state     domain.LifecycleState
	since     time.Time
	inFlight  *transition
	cancelled bool
	plans     map[domain.TransitionKind]domain.StepPlan
	scheduler ports.Scheduler
	logStream ports.LogStreamInterface
	monitor   ports.SessionMonitorInterface
	now       func() time.Time
}

type LifecycleOption func(*LifecycleMachine)

func WithStepPlans(plans map[domain.TransitionKind]domain.StepPlan) LifecycleOption {
	return func(m *LifecycleMachine) {
		m.plans = plans
	}
}

func WithScheduler(scheduler ports.Scheduler) LifecycleOption {
	return func(m *LifecycleMachine) {
		m.scheduler = scheduler
	}
}

func WithMonitor(monitor ports.SessionMonitorInterface) LifecycleOption {
	return func(m *LifecycleMachine) {
		if monitor != nil {
			m.monitor = monitor
		}
	}
}

// WithRunningSince backdates the Running state, the machine reports uptime from it.
func WithRunningSince(since time.Time) LifecycleOption {
	return func(m *LifecycleMachine) {
		m.since = since
	}
}

// NewLifecycleMachine creates a machine in Running that writes its transition output to
// logStream.
func NewLifecycleMachine(serverId string, logStream ports.LogStreamInterface, opts ...LifecycleOption) *LifecycleMachine {
	m := &LifecycleMachine{
		serverId:  serverId,
		state:     domain.LifecycleStateRunning,
		plans:     domain.DefaultStepPlans(),
		scheduler: NewTimerScheduler(),
		logStream: logStream,
		monitor:   noopMonitor{},
		now:       time.Now,
	}
	m.since = m.now()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *LifecycleMachine) State() domain.LifecycleState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Since returns the time the current state was entered.
func (m *LifecycleMachine) Since() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.since
}

func (m *LifecycleMachine) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight != nil
}

// Request starts the transition of the given kind. It appends the initiated entry and
// schedules the first step before returning. Rejections leave the machine untouched.
func (m *LifecycleMachine) Request(kind domain.TransitionKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelled {
		return domain.ErrSessionClosed
	}

	plan, ok := m.plans[kind]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, kind)
	}

	if err := m.admit(kind); err != nil {
		m.monitor.TransitionRejected(kind, err)
		logger.Log().Debug("Transition rejected",
			zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
			zap.String(logger.LogKeyServer, m.serverId),
			zap.String("transition", string(kind)),
			zap.String("state", string(m.state)),
			zap.Error(err),
		)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	tr := &transition{
		plan:   plan,
		ctx:    ctx,
		cancel: cancel,
	}
	m.inFlight = tr
	m.setState(plan.Transient)

	logger.Log().Info("Transition started",
		zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
		zap.String(logger.LogKeyServer, m.serverId),
		zap.String("transition", string(kind)),
	)
	m.monitor.TransitionStarted(kind)

	m.logStream.Append(plan.Initiated, domain.EntryKindOutput)
	m.scheduleNext(tr)
	return nil
}

func (m *LifecycleMachine) admit(kind domain.TransitionKind) error {
	if m.inFlight != nil {
		return domain.ErrTransitionBusy
	}
	if kind == domain.TransitionStart && m.state == domain.LifecycleStateRunning {
		return domain.ErrAlreadyRunning
	}
	if kind == domain.TransitionStop && m.state == domain.LifecycleStateStopped {
		return domain.ErrAlreadyStopped
	}
	return nil
}

// scheduleNext must be called with the lock held. Each step is scheduled from the
// completion of the previous one, never from the start of the transition.
func (m *LifecycleMachine) scheduleNext(tr *transition) {
	if tr.next >= len(tr.plan.Steps) {
		m.finish(tr, tr.plan.Terminal, TransitionOutcomeCompleted)
		return
	}
	step := tr.plan.Steps[tr.next]
	tr.timer = m.scheduler.AfterFunc(step.Delay, func() {
		m.fire(tr)
	})
}

func (m *LifecycleMachine) current(tr *transition) bool {
	return !m.cancelled && m.inFlight == tr && tr.ctx.Err() == nil
}

func (m *LifecycleMachine) fire(tr *transition) {
	m.mu.Lock()
	if !m.current(tr) {
		m.mu.Unlock()
		return
	}
	step := tr.plan.Steps[tr.next]
	m.mu.Unlock()

	var err error
	if step.Action != nil {
		err = step.Action(tr.ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// closed while the action ran
	if !m.current(tr) {
		return
	}

	if err != nil {
		logger.Log().Error("Transition step failed",
			zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
			zap.String(logger.LogKeyServer, m.serverId),
			zap.String("transition", string(tr.plan.Kind)),
			zap.String("step", step.Name),
			zap.Error(err),
		)
		m.logStream.Append(fmt.Sprintf("Step %s failed: %v", step.Name, err), domain.EntryKindError)
		m.logStream.Append(`Server is stopped. Type "start" to try again`, domain.EntryKindOutput)
		m.finish(tr, domain.LifecycleStateStopped, TransitionOutcomeFailed)
		return
	}

	logger.Log().Debug("Transition step done",
		zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
		zap.String(logger.LogKeyServer, m.serverId),
		zap.String("transition", string(tr.plan.Kind)),
		zap.String("step", step.Name),
	)

	m.logStream.Append(step.Text, step.Kind)
	tr.next++
	m.scheduleNext(tr)
}

// finish must be called with the lock held.
func (m *LifecycleMachine) finish(tr *transition, state domain.LifecycleState, outcome string) {
	m.inFlight = nil
	tr.cancel()
	m.setState(state)
	m.monitor.TransitionFinished(tr.plan.Kind, outcome)

	logger.Log().Info("Transition finished",
		zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
		zap.String(logger.LogKeyServer, m.serverId),
		zap.String("transition", string(tr.plan.Kind)),
		zap.String("outcome", outcome),
		zap.String("state", string(state)),
	)
}

func (m *LifecycleMachine) setState(state domain.LifecycleState) {
	if m.state == state {
		return
	}
	m.state = state
	m.since = m.now()
}

// Cancel stops the pending step of an in-flight transition and refuses every later request.
// Once Cancel returns no step of this machine appends to the log again.
func (m *LifecycleMachine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelled {
		return
	}
	m.cancelled = true

	tr := m.inFlight
	if tr == nil {
		return
	}
	m.inFlight = nil
	if tr.timer != nil {
		tr.timer.Stop()
	}
	tr.cancel()
	m.monitor.TransitionFinished(tr.plan.Kind, TransitionOutcomeCancelled)

	logger.Log().Info("Transition cancelled",
		zap.String(logger.LogKeyContext, logger.LogContextLifecycle),
		zap.String(logger.LogKeyServer, m.serverId),
		zap.String("transition", string(tr.plan.Kind)),
		zap.Int("pendingSteps", len(tr.plan.Steps)-tr.next),
	)
}
