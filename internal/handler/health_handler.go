package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/console/internal/core/ports"
)

type HealthHandler struct {
	sessionManager ports.SessionManagerInterface
	startedAt      time.Time
}

type HealthResponse struct {
	Mode      string    `json:"mode" validate:"required"`
	Sessions  int       `json:"sessions"`
	StartDate time.Time `json:"start_date"`
} // @name HealthResponse

func NewHealthHandler(sessionManager ports.SessionManagerInterface) *HealthHandler {
	return &HealthHandler{
		sessionManager: sessionManager,
		startedAt:      time.Now(),
	}
}

// @Summary Daemon health
// @ID getHealth
// @Tags health, console
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Mode:      "ok",
		Sessions:  len(h.sessionManager.List()),
		StartDate: h.startedAt,
	})
}
