package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
)

type SessionLogHandler struct {
	sessionManager ports.SessionManagerInterface
}

type SessionLogResponse struct {
	Handle  string            `json:"handle" validate:"required"`
	Entries []domain.LogEntry `json:"entries" validate:"required"`
} // @name SessionLogResponse

func NewSessionLogHandler(sessionManager ports.SessionManagerInterface) *SessionLogHandler {
	return &SessionLogHandler{sessionManager: sessionManager}
}

// @Summary Get the console log of a session
// @ID listLogs
// @Tags session, console, logs
// @Produce json
// @Param session path string true "Session handle"
// @Success 200 {object} SessionLogResponse
// @Router /api/v1/sessions/{session}/logs [get]
func (sl SessionLogHandler) ListLogs(c *fiber.Ctx) error {
	handle := c.Params("session")
	entries, err := sl.sessionManager.Snapshot(handle)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(SessionLogResponse{Handle: handle, Entries: entries})
}
