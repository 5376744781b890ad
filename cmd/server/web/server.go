package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/highcard-dev/console/cmd/server/web/middlewares"
	constants "github.com/highcard-dev/console/internal"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	corsMiddleware    fiber.Handler
	headerMiddleware  fiber.Handler
	requestLogger     fiber.Handler
	sessionHandler    ports.SessionHandlerInterface
	sessionLogHandler ports.SessionLogHandlerInterface
	websocketHandler  ports.WebsocketHandlerInterface
	healthHandler     ports.HealthHandlerInterface
	metricsEnabled    bool
}

func NewServer(
	sessionHandler ports.SessionHandlerInterface,
	sessionLogHandler ports.SessionLogHandlerInterface,
	websocketHandler ports.WebsocketHandlerInterface,
	healthHandler ports.HealthHandlerInterface,
	metricsEnabled bool,
) *Server {
	return &Server{
		corsMiddleware: cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept",
		}),
		headerMiddleware:  middlewares.NewHeaderMiddleware(),
		requestLogger:     middlewares.NewRequestLogger(),
		sessionHandler:    sessionHandler,
		sessionLogHandler: sessionLogHandler,
		websocketHandler:  websocketHandler,
		healthHandler:     healthHandler,
		metricsEnabled:    metricsEnabled,
	}
}

func (s *Server) Initialize() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return ctx.Status(e.Code).JSON(e)
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Error{
				Code:    fiber.StatusInternalServerError,
				Message: err.Error(),
			})
		},
		DisableStartupMessage: true,
	})

	s.SetAPI(app)

	return app
}

func (s *Server) SetAPI(app *fiber.App) *fiber.App {
	app.Use(s.headerMiddleware, s.requestLogger)
	wsRoutes := app.Group("/ws/v1")
	apiRoutes := app.Use(s.corsMiddleware).Group("/api/v1")

	wsRoutes.Use(func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	//Session Group
	apiRoutes.Post("/sessions", s.sessionHandler.OpenSession).Name("sessions.open")
	apiRoutes.Get("/sessions", s.sessionHandler.ListSessions).Name("sessions.list")
	apiRoutes.Get("/sessions/:session", s.sessionHandler.GetSession).Name("sessions.get")
	apiRoutes.Delete("/sessions/:session", s.sessionHandler.CloseSession).Name("sessions.close")
	apiRoutes.Post("/sessions/:session/commands", s.sessionHandler.SubmitCommand).Name("sessions.command")
	apiRoutes.Get("/sessions/:session/state", s.sessionHandler.GetState).Name("sessions.state")

	//Session Logs Group
	apiRoutes.Get("/sessions/:session/logs", s.sessionLogHandler.ListLogs).Name("sessions.logs")

	apiRoutes.Get("/health", s.healthHandler.Health).Name("health")

	//Websocket Group
	wsRoutes.Get("/sessions/:session", websocket.New(s.websocketHandler.HandleSession)).Name("ws.session")

	if s.metricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler())).Name("metrics")
	}

	app.Get("/info", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"version": constants.Version,
		})
	})

	//Catch-all 404 page
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNotFound)
	})

	return app
}

func (s *Server) Serve(app *fiber.App, port int) error {
	addr := fmt.Sprintf(":%d", port)
	if err := app.Listen(addr); err != nil {
		logger.Log().Error("web server error", zap.String(logger.LogKeyContext, logger.LogContextHttp), zap.Error(err))
		return err
	}
	return nil
}
