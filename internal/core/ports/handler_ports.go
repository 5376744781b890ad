package ports

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type SessionHandlerInterface interface {
	OpenSession(c *fiber.Ctx) error
	ListSessions(c *fiber.Ctx) error
	GetSession(c *fiber.Ctx) error
	SubmitCommand(c *fiber.Ctx) error
	GetState(c *fiber.Ctx) error
	CloseSession(c *fiber.Ctx) error
}

type SessionLogHandlerInterface interface {
	ListLogs(c *fiber.Ctx) error
}

type WebsocketHandlerInterface interface {
	HandleSession(c *websocket.Conn)
}

type HealthHandlerInterface interface {
	Health(c *fiber.Ctx) error
}
