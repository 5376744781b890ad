package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	constants "github.com/highcard-dev/console/internal"
	"github.com/highcard-dev/console/internal/utils/logger"
	"go.uber.org/zap"
)

func NewHeaderMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Response().Header.Set("Console-Version", constants.Version)
		return ctx.Next()
	}
}

// NewRequestLogger logs every request at debug level.
func NewRequestLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Log().Debug("Request",
			zap.String(logger.LogKeyContext, logger.LogContextHttp),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}
