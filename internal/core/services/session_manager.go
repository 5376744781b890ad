package services

import (
	"sort"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/utils/logger"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

// SessionManager keeps the open console sessions by handle.
type SessionManager struct {
	sessions  cmap.ConcurrentMap[string, *ConsoleSession]
	options   SessionOptions
	scheduler *gocron.Scheduler
}

func NewSessionManager(options SessionOptions) *SessionManager {
	return &SessionManager{
		sessions: cmap.New[*ConsoleSession](),
		options:  options,
	}
}

func (sm *SessionManager) Open(serverId string, serverName string) (*domain.SessionInfo, error) {
	session, err := OpenSession(serverId, serverName, sm.options)
	if err != nil {
		return nil, err
	}
	info := session.Info()
	sm.sessions.Set(info.Handle, session)
	return &info, nil
}

func (sm *SessionManager) session(handle string) (*ConsoleSession, error) {
	session, ok := sm.sessions.Get(handle)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (sm *SessionManager) Get(handle string) (*domain.SessionInfo, error) {
	session, err := sm.session(handle)
	if err != nil {
		return nil, err
	}
	info := session.Info()
	return &info, nil
}

// List returns the open sessions, oldest first.
func (sm *SessionManager) List() []domain.SessionInfo {
	infos := make([]domain.SessionInfo, 0, sm.sessions.Count())
	for item := range sm.sessions.IterBuffered() {
		infos = append(infos, item.Val.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].OpenedAt.Before(infos[j].OpenedAt)
	})
	return infos
}

func (sm *SessionManager) Submit(handle string, rawLine string) error {
	session, err := sm.session(handle)
	if err != nil {
		return err
	}
	return session.Submit(rawLine)
}

func (sm *SessionManager) Snapshot(handle string) ([]domain.LogEntry, error) {
	session, err := sm.session(handle)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (sm *SessionManager) CurrentState(handle string) (domain.LifecycleState, error) {
	session, err := sm.session(handle)
	if err != nil {
		return "", err
	}
	return session.State(), nil
}

func (sm *SessionManager) Subscribe(handle string) (chan *domain.LogEvent, error) {
	session, err := sm.session(handle)
	if err != nil {
		return nil, err
	}
	return session.Subscribe(), nil
}

func (sm *SessionManager) Unsubscribe(handle string, subscription chan *domain.LogEvent) {
	session, err := sm.session(handle)
	if err != nil {
		return
	}
	session.Unsubscribe(subscription)
}

func (sm *SessionManager) Close(handle string) error {
	session, ok := sm.sessions.Pop(handle)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Close()
	return nil
}

func (sm *SessionManager) CloseAll() {
	for _, handle := range sm.sessions.Keys() {
		sm.Close(handle)
	}
}

// ReapIdle closes sessions nobody watched or used for longer than idleTimeout and returns
// how many were closed.
func (sm *SessionManager) ReapIdle(idleTimeout time.Duration) int {
	reaped := 0
	now := time.Now()
	for item := range sm.sessions.IterBuffered() {
		session := item.Val
		if session.Watched() || now.Sub(session.LastActivity()) < idleTimeout {
			continue
		}
		if sm.Close(item.Key) == nil {
			reaped++
			logger.Log().Info("Reaped idle console session",
				zap.String(logger.LogKeyContext, logger.LogContextReaper),
				zap.String(logger.LogKeySession, item.Key),
				zap.Duration("idle", now.Sub(session.LastActivity())),
			)
		}
	}
	return reaped
}

func (sm *SessionManager) StartReaper(interval time.Duration, idleTimeout time.Duration) error {
	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(interval).Do(func() {
		sm.ReapIdle(idleTimeout)
	})
	if err != nil {
		return err
	}
	scheduler.StartAsync()
	sm.scheduler = scheduler

	logger.Log().Info("Session reaper started",
		zap.String(logger.LogKeyContext, logger.LogContextReaper),
		zap.Duration("interval", interval),
		zap.Duration("idleTimeout", idleTimeout),
	)
	return nil
}

func (sm *SessionManager) StopReaper() {
	if sm.scheduler != nil {
		sm.scheduler.Stop()
	}
}
