package cmd

import (
	"time"

	"github.com/highcard-dev/console/cmd/server/web"
	"github.com/highcard-dev/console/internal/config"
	"github.com/highcard-dev/console/internal/core/services"
	"github.com/highcard-dev/console/internal/handler"
	"github.com/highcard-dev/console/internal/signals"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var port int
var shutdownWait time.Duration

var ServeCommand = &cobra.Command{
	Use:   "serve",
	Short: "Serve console sessions over HTTP and WebSocket",
	Long: `This command locks the terminal by starting the daemon.
Console views open sessions through the API, submit command lines
and follow the session log over the WebSocket endpoint.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		logger.Log().Info("Starting console daemon",
			zap.String(logger.LogKeyContext, logger.LogContextMain),
			zap.Int("port", port),
			zap.String("metricsSource", cfg.MetricsSource),
		)

		var registerer prometheus.Registerer
		if cfg.MetricsEnabled {
			registerer = prometheus.DefaultRegisterer
		}
		sessionMonitor := services.NewSessionMonitor(registerer)
		defer sessionMonitor.Shutdown()

		sessionManager := services.NewSessionManager(services.SessionOptions{
			Plans:   cfg.Plans,
			Metrics: newMetricsProvider(cfg),
			Monitor: sessionMonitor,
		})

		if err := sessionManager.StartReaper(cfg.ReapInterval, cfg.IdleTimeout); err != nil {
			return err
		}
		defer sessionManager.StopReaper()

		sessionHandler := handler.NewSessionHandler(sessionManager)
		sessionLogHandler := handler.NewSessionLogHandler(sessionManager)
		websocketHandler := handler.NewWebsocketHandler(sessionManager)
		healthHandler := handler.NewHealthHandler(sessionManager)

		s := web.NewServer(sessionHandler, sessionLogHandler, websocketHandler, healthHandler, cfg.MetricsEnabled)
		a := s.Initialize()

		signalHandler := signals.NewSignalHandler(sessionManager, shutdownWait)
		signalHandler.SetApp(a)
		signalHandler.Listen()

		err = s.Serve(a, port)

		logger.Log().Info("Shutting down", zap.String(logger.LogKeyContext, logger.LogContextMain))
		signalHandler.Shutdown()

		return err
	},
}

func init() {
	ServeCommand.Flags().IntVarP(&port, "port", "p", 8081, "Port")
	ServeCommand.Flags().DurationVarP(&shutdownWait, "shutdown-wait", "", 10*time.Second, "How long open connections may take to drain on shutdown")
}
