package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils/logger"
	"go.uber.org/zap"
)

type SignalHandler struct {
	sessionManager ports.SessionManagerInterface
	app            *fiber.App
	shutdownWait   time.Duration
	sigc           chan os.Signal
	done           chan struct{}
	once           sync.Once
}

func NewSignalHandler(sessionManager ports.SessionManagerInterface, shutdownWait time.Duration) *SignalHandler {
	return &SignalHandler{
		sessionManager: sessionManager,
		shutdownWait:   shutdownWait,
		sigc:           make(chan os.Signal, 1),
		done:           make(chan struct{}),
	}
}

func (sh *SignalHandler) SetApp(app *fiber.App) {
	sh.app = app
}

// Listen waits for a termination signal in the background and runs the shutdown routine.
func (sh *SignalHandler) Listen() {
	signal.Notify(sh.sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	go func() {
		select {
		case s := <-sh.sigc:
			logger.Log().Info("Received shutdown signal",
				zap.String(logger.LogKeyContext, logger.LogContextSignal),
				zap.String("signal", s.String()),
			)
			sh.Shutdown()
		case <-sh.done:
		}
	}()
}

// Shutdown closes every console session, cancelling pending lifecycle steps, and stops the
// web server.
func (sh *SignalHandler) Shutdown() {
	sh.once.Do(sh.shutdown)
}

func (sh *SignalHandler) shutdown() {
	close(sh.done)
	signal.Stop(sh.sigc)

	logger.Log().Info("Closing console sessions",
		zap.String(logger.LogKeyContext, logger.LogContextSignal),
		zap.Int("sessions", len(sh.sessionManager.List())),
	)
	sh.sessionManager.CloseAll()

	if sh.app == nil {
		return
	}
	if err := sh.app.ShutdownWithTimeout(sh.shutdownWait); err != nil {
		logger.Log().Error("Web server shutdown failed",
			zap.String(logger.LogKeyContext, logger.LogContextSignal),
			zap.Error(err),
		)
	}
}
