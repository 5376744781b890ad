package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
)

type SessionHandler struct {
	sessionManager ports.SessionManagerInterface
}

type OpenSessionBody struct {
	ServerId   string `json:"serverId" validate:"required"`
	ServerName string `json:"serverName" validate:"required"`
} // @name OpenSessionBody

type CommandBody struct {
	Command string `json:"command"`
} // @name CommandBody

type SessionsResponse struct {
	Sessions []domain.SessionInfo `json:"sessions" validate:"required"`
} // @name SessionsResponse

type StateResponse struct {
	State domain.LifecycleState `json:"state" validate:"required"`
} // @name StateResponse

func NewSessionHandler(sessionManager ports.SessionManagerInterface) *SessionHandler {
	return &SessionHandler{sessionManager: sessionManager}
}

// sessionError maps session errors onto http errors.
func sessionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidIdentity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSessionClosed):
		return fiber.NewError(fiber.StatusGone, err.Error())
	}
	return err
}

// @Summary Open a console session
// @ID openSession
// @Tags session, console
// @Accept json
// @Produce json
// @Param body body OpenSessionBody true "Server identity"
// @Success 201 {object} domain.SessionInfo
// @Router /api/v1/sessions [post]
func (sh SessionHandler) OpenSession(c *fiber.Ctx) error {
	var body OpenSessionBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	info, err := sh.sessionManager.Open(body.ServerId, body.ServerName)
	if err != nil {
		return sessionError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(info)
}

// @Summary List open console sessions
// @ID listSessions
// @Tags session, console
// @Produce json
// @Success 200 {object} SessionsResponse
// @Router /api/v1/sessions [get]
func (sh SessionHandler) ListSessions(c *fiber.Ctx) error {
	return c.JSON(SessionsResponse{Sessions: sh.sessionManager.List()})
}

// @Summary Get a console session
// @ID getSession
// @Tags session, console
// @Produce json
// @Param session path string true "Session handle"
// @Success 200 {object} domain.SessionInfo
// @Router /api/v1/sessions/{session} [get]
func (sh SessionHandler) GetSession(c *fiber.Ctx) error {
	info, err := sh.sessionManager.Get(c.Params("session"))
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(info)
}

// @Summary Submit a console line
// @Description The line is executed right away, lifecycle steps continue in the background.
// @ID submitCommand
// @Tags session, console
// @Accept json
// @Produce json
// @Param session path string true "Session handle"
// @Param body body CommandBody true "Console line"
// @Success 202 {object} StateResponse
// @Router /api/v1/sessions/{session}/commands [post]
func (sh SessionHandler) SubmitCommand(c *fiber.Ctx) error {
	var body CommandBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	handle := c.Params("session")
	if err := sh.sessionManager.Submit(handle, body.Command); err != nil {
		return sessionError(err)
	}

	state, err := sh.sessionManager.CurrentState(handle)
	if err != nil {
		return sessionError(err)
	}
	return c.Status(fiber.StatusAccepted).JSON(StateResponse{State: state})
}

// @Summary Get the lifecycle state of a session
// @ID getState
// @Tags session, console
// @Produce json
// @Param session path string true "Session handle"
// @Success 200 {object} StateResponse
// @Router /api/v1/sessions/{session}/state [get]
func (sh SessionHandler) GetState(c *fiber.Ctx) error {
	state, err := sh.sessionManager.CurrentState(c.Params("session"))
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(StateResponse{State: state})
}

// @Summary Close a console session
// @ID closeSession
// @Tags session, console
// @Param session path string true "Session handle"
// @Success 204
// @Router /api/v1/sessions/{session} [delete]
func (sh SessionHandler) CloseSession(c *fiber.Ctx) error {
	if err := sh.sessionManager.Close(c.Params("session")); err != nil {
		return sessionError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
