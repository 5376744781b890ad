package logger

import (
	"sync"
	"testing"

	"github.com/highcard-dev/console/internal/utils/env"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogKeyContext       = "context"
	LogKeySession       = "session"
	LogKeyServer        = "server"
	LogContextMain      = "main"
	LogContextSignal    = "signal"
	LogContextHttp      = "http"
	LogContextWebSocket = "web-socket"
	LogContextSession   = "session"
	LogContextLifecycle = "lifecycle"
	LogContextConsole   = "console"
	LogContextMonitor   = "monitor"
	LogContextReaper    = "reaper"
)

var (
	logOnce        sync.Once
	logger         *zap.Logger
	testingContext bool
)

type LoggerOptions struct {
	WithStructureLogging bool
	WithReducedLogging   bool
	WithDefaultLogging   bool
	LogLevel             zapcore.Level
	DefaultFields        []zap.Field
}

type LoggerOptionsFunc func(*LoggerOptions) error

// Log returns the process wide logger. The options of the first call win.
func Log(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	logOnce.Do(func() {
		if testingContext {
			return
		}
		logger = NewLogger(optFuncs...)
	})
	return logger
}

func SetTestLogger(t *testing.T) {
	logOnce.Do(func() {})
	logger = zaptest.NewLogger(t)
}

func SetupLogsCapture() *observer.ObservedLogs {
	logOnce.Do(func() {})
	core, logs := observer.New(zap.DebugLevel)
	logger = zap.New(core)
	testingContext = true
	return logs
}

func WithStructuredLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithStructureLogging = true
		return nil
	}
}

func WithDefaultLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithDefaultLogging = true
		return nil
	}
}

func WithReducedLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithReducedLogging = true
		return nil
	}
}

func WithDefaultFields(fields []zap.Field) LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.DefaultFields = fields
		return nil
	}
}

// WithFormat maps the --log-format flag onto the encoder options. "none" disables logging.
func WithFormat(format string) LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		switch format {
		case "structured":
			options.WithStructureLogging = true
		case "reduced":
			options.WithReducedLogging = true
		case "none":
		default:
			options.WithDefaultLogging = true
		}
		return nil
	}
}

func levelFromEnv() zapcore.Level {
	switch env.CanGet("LOG_LEVEL") {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func NewLogger(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	var options = &LoggerOptions{}
	var cores []zapcore.Core
	for _, optFunc := range optFuncs {
		if err := optFunc(options); err != nil {
			panic("error instantiating new logger: " + err.Error())
		}
	}

	options.LogLevel = levelFromEnv()

	if options.WithStructureLogging {
		cores = append(cores, NewProductionEncoder(options.LogLevel))
	}
	if options.WithDefaultLogging {
		cores = append(cores, NewDevelopmentEncoder(options.LogLevel))
	}
	if options.WithReducedLogging {
		cores = append(cores, NewReducedEncoder(options.LogLevel))
	}
	// no option at all still has to yield a usable logger
	if len(cores) == 0 {
		return zap.NewNop()
	}
	core := zapcore.NewTee(cores...)
	l := zap.New(core)
	if len(options.DefaultFields) > 0 {
		l = l.With(options.DefaultFields...)
	}
	return l
}
