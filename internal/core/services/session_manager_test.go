package services_test

import (
	"testing"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/services"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*services.SessionManager, *manualScheduler) {
	scheduler := &manualScheduler{}
	return services.NewSessionManager(services.SessionOptions{
		Scheduler: scheduler,
		Metrics:   fixedMetrics{gauges: defaultGauges()},
	}), scheduler
}

func TestSessionManager_OpenAndGet(t *testing.T) {
	sm, _ := newTestManager()
	defer sm.CloseAll()

	info, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)

	got, err := sm.Get(info.Handle)
	require.NoError(t, err)
	assert.Equal(t, info.Handle, got.Handle)
	assert.Equal(t, domain.LifecycleStateRunning, got.State)

	_, err = sm.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionManager_OpenInvalidIdentity(t *testing.T) {
	sm, _ := newTestManager()

	_, err := sm.Open("", "")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentity)
	assert.Empty(t, sm.List())
}

func TestSessionManager_ListIsOrdered(t *testing.T) {
	sm, _ := newTestManager()
	defer sm.CloseAll()

	first, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := sm.Open("srv-2", "Beta")
	require.NoError(t, err)

	list := sm.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.Handle, list[0].Handle)
	assert.Equal(t, second.Handle, list[1].Handle)
}

func TestSessionManager_SubmitAndState(t *testing.T) {
	sm, scheduler := newTestManager()
	defer sm.CloseAll()

	info, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)

	require.NoError(t, sm.Submit(info.Handle, "stop"))
	state, err := sm.CurrentState(info.Handle)
	require.NoError(t, err)
	assert.Equal(t, domain.LifecycleStateStopping, state)

	scheduler.FireAll()
	state, err = sm.CurrentState(info.Handle)
	require.NoError(t, err)
	assert.Equal(t, domain.LifecycleStateStopped, state)

	entries, err := sm.Snapshot(info.Handle)
	require.NoError(t, err)
	assert.Equal(t, "Server stopped successfully.", entries[len(entries)-1].Text)

	assert.ErrorIs(t, sm.Submit("missing", "help"), domain.ErrSessionNotFound)
}

func TestSessionManager_Close(t *testing.T) {
	sm, _ := newTestManager()

	info, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)
	subscription, err := sm.Subscribe(info.Handle)
	require.NoError(t, err)
	<-subscription

	require.NoError(t, sm.Close(info.Handle))

	_, open := <-subscription
	assert.False(t, open)
	assert.ErrorIs(t, sm.Close(info.Handle), domain.ErrSessionNotFound)
	_, err = sm.Snapshot(info.Handle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionManager_ReapIdle(t *testing.T) {
	logs := logger.SetupLogsCapture()
	sm, _ := newTestManager()
	defer sm.CloseAll()

	idle, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)
	watched, err := sm.Open("srv-2", "Beta")
	require.NoError(t, err)
	subscription, err := sm.Subscribe(watched.Handle)
	require.NoError(t, err)
	defer sm.Unsubscribe(watched.Handle, subscription)

	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 1, sm.ReapIdle(5*time.Millisecond))
	assert.Equal(t, 1, logs.FilterMessage("Reaped idle console session").Len())
	_, err = sm.Get(idle.Handle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = sm.Get(watched.Handle)
	assert.NoError(t, err)

	assert.Equal(t, 0, sm.ReapIdle(time.Hour))
}

func TestSessionManager_Reaper(t *testing.T) {
	sm, _ := newTestManager()
	defer sm.CloseAll()

	_, err := sm.Open("srv-1", "Alpha")
	require.NoError(t, err)

	require.NoError(t, sm.StartReaper(time.Second, time.Nanosecond))
	defer sm.StopReaper()

	assert.Eventually(t, func() bool {
		return len(sm.List()) == 0
	}, 3*time.Second, 20*time.Millisecond)
}
