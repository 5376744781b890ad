package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/services"
	mock_ports "github.com/highcard-dev/console/test/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMachine(opts ...services.LifecycleOption) (*services.LifecycleMachine, *services.LogStream, *manualScheduler) {
	scheduler := &manualScheduler{}
	logStream := services.NewLogStream(nil)
	opts = append([]services.LifecycleOption{services.WithScheduler(scheduler)}, opts...)
	return services.NewLifecycleMachine("srv-1", logStream, opts...), logStream, scheduler
}

func TestLifecycleMachine_StartsRunning(t *testing.T) {
	machine, _, _ := newTestMachine()

	assert.Equal(t, domain.LifecycleStateRunning, machine.State())
	assert.False(t, machine.Busy())
}

func TestLifecycleMachine_Stop(t *testing.T) {
	machine, logStream, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionStop))
	assert.Equal(t, domain.LifecycleStateStopping, machine.State())
	assert.True(t, machine.Busy())
	assert.Equal(t, []string{"Stopping server..."}, texts(logStream.Snapshot()))
	assert.Equal(t, 500*time.Millisecond, scheduler.NextDelay())

	assert.Equal(t, 3, scheduler.FireAll())

	assert.Equal(t, domain.LifecycleStateStopped, machine.State())
	assert.False(t, machine.Busy())
	assert.Equal(t, []string{
		"Stopping server...",
		"Disconnecting players...",
		"Saving world data...",
		"Server stopped successfully.",
	}, texts(logStream.Snapshot()))
	assert.Equal(t, domain.EntryKindSuccess, logStream.Snapshot()[3].Kind)
}

func TestLifecycleMachine_StepsAreChained(t *testing.T) {
	machine, _, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionStop))

	// only the next step is ever scheduled
	assert.Equal(t, 1, scheduler.Pending())
	scheduler.Fire()
	assert.Equal(t, 1, scheduler.Pending())
	assert.Equal(t, time.Second, scheduler.NextDelay())
}

func TestLifecycleMachine_RestartStaysRestarting(t *testing.T) {
	machine, logStream, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionRestart))
	for i := 0; i < 3; i++ {
		scheduler.Fire()
		assert.Equal(t, domain.LifecycleStateRestarting, machine.State())
	}
	scheduler.Fire()

	assert.Equal(t, domain.LifecycleStateRunning, machine.State())
	assert.Equal(t, []string{
		"Restarting server...",
		"Saving world data...",
		"Server stopped.",
		"Starting server...",
		"Server restarted successfully.",
	}, texts(logStream.Snapshot()))
}

func TestLifecycleMachine_Rejections(t *testing.T) {
	machine, logStream, scheduler := newTestMachine()

	assert.ErrorIs(t, machine.Request(domain.TransitionStart), domain.ErrAlreadyRunning)
	assert.ErrorIs(t, machine.Request(domain.TransitionStart), domain.ErrInvalidTransition)

	require.NoError(t, machine.Request(domain.TransitionStop))
	assert.ErrorIs(t, machine.Request(domain.TransitionStop), domain.ErrTransitionBusy)
	assert.ErrorIs(t, machine.Request(domain.TransitionStart), domain.ErrTransitionBusy)
	assert.ErrorIs(t, machine.Request(domain.TransitionRestart), domain.ErrTransitionBusy)

	scheduler.FireAll()
	assert.ErrorIs(t, machine.Request(domain.TransitionStop), domain.ErrAlreadyStopped)

	// rejections never write to the log
	assert.Len(t, logStream.Snapshot(), 4)
}

func TestLifecycleMachine_RestartFromStopped(t *testing.T) {
	machine, _, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionStop))
	scheduler.FireAll()
	require.NoError(t, machine.Request(domain.TransitionRestart))
	scheduler.FireAll()

	assert.Equal(t, domain.LifecycleStateRunning, machine.State())
}

func TestLifecycleMachine_CancelDropsPendingSteps(t *testing.T) {
	machine, logStream, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionStop))
	scheduler.Fire()
	before := logStream.Len()

	machine.Cancel()
	scheduler.FireAll()

	assert.Equal(t, before, logStream.Len())
	assert.Equal(t, domain.LifecycleStateStopping, machine.State())
	assert.False(t, machine.Busy())
	assert.ErrorIs(t, machine.Request(domain.TransitionStart), domain.ErrSessionClosed)
}

func TestLifecycleMachine_StaleContinuationIsIgnored(t *testing.T) {
	machine, logStream, scheduler := newTestMachine()

	require.NoError(t, machine.Request(domain.TransitionStop))
	// keep the first continuation, then cancel; the timer stop is not honoured
	scheduler.mu.Lock()
	stale := scheduler.pending[0]
	scheduler.mu.Unlock()
	machine.Cancel()

	stale.f()

	assert.Equal(t, 1, logStream.Len())
}

func TestLifecycleMachine_FailingStepStops(t *testing.T) {
	plans := domain.DefaultStepPlans()
	start := plans[domain.TransitionStart]
	start.Steps[1].Action = func(ctx context.Context) error {
		return errors.New("world corrupted")
	}
	plans[domain.TransitionStart] = start

	machine, logStream, scheduler := newTestMachine(services.WithStepPlans(plans))
	require.NoError(t, machine.Request(domain.TransitionStop))
	scheduler.FireAll()

	require.NoError(t, machine.Request(domain.TransitionStart))
	scheduler.FireAll()

	assert.Equal(t, domain.LifecycleStateStopped, machine.State())
	assert.False(t, machine.Busy())
	entries := logStream.Snapshot()
	assert.Equal(t, []string{
		"Starting server...",
		"Loading configuration...",
		"Step world failed: world corrupted",
		`Server is stopped. Type "start" to try again`,
	}, texts(entries[4:]))
	assert.Equal(t, domain.EntryKindError, entries[6].Kind)
}

func TestLifecycleMachine_ActionSeesCancellation(t *testing.T) {
	plans := domain.DefaultStepPlans()
	stop := plans[domain.TransitionStop]

	var machine *services.LifecycleMachine
	var actionCtx context.Context
	stop.Steps[0].Action = func(ctx context.Context) error {
		actionCtx = ctx
		machine.Cancel()
		return nil
	}
	plans[domain.TransitionStop] = stop

	machine, logStream, scheduler := newTestMachine(services.WithStepPlans(plans))
	require.NoError(t, machine.Request(domain.TransitionStop))
	scheduler.FireAll()

	require.NotNil(t, actionCtx)
	assert.ErrorIs(t, actionCtx.Err(), context.Canceled)
	assert.Equal(t, []string{"Stopping server..."}, texts(logStream.Snapshot()))
}

func TestLifecycleMachine_ReportsToMonitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := mock_ports.NewMockSessionMonitorInterface(ctrl)
	gomock.InOrder(
		monitor.EXPECT().TransitionRejected(domain.TransitionStart, gomock.Any()),
		monitor.EXPECT().TransitionStarted(domain.TransitionStop),
		monitor.EXPECT().TransitionFinished(domain.TransitionStop, services.TransitionOutcomeCompleted),
		monitor.EXPECT().TransitionStarted(domain.TransitionStart),
		monitor.EXPECT().TransitionFinished(domain.TransitionStart, services.TransitionOutcomeCancelled),
	)

	machine, _, scheduler := newTestMachine(services.WithMonitor(monitor))
	machine.Request(domain.TransitionStart)
	machine.Request(domain.TransitionStop)
	scheduler.FireAll()
	machine.Request(domain.TransitionStart)
	machine.Cancel()
}

func TestLifecycleMachine_SinceTracksStateChanges(t *testing.T) {
	since := time.Now().Add(-48 * time.Hour)
	machine, _, scheduler := newTestMachine(services.WithRunningSince(since))

	assert.Equal(t, since, machine.Since())

	require.NoError(t, machine.Request(domain.TransitionRestart))
	scheduler.FireAll()

	assert.True(t, machine.Since().After(since))
}
