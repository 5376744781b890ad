package handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils/logger"
	"go.uber.org/zap"
)

type WebsocketHandler struct {
	sessionManager ports.SessionManagerInterface
}

type WebsocketError struct {
	Error string `json:"error"`
} // @name WebsocketError

func NewWebsocketHandler(sessionManager ports.SessionManagerInterface) *WebsocketHandler {
	return &WebsocketHandler{sessionManager: sessionManager}
}

// HandleSession streams the log of a session: one reset event with the current log, then
// every append and reset. Text frames from the client are submitted as console lines.
func (wh WebsocketHandler) HandleSession(c *websocket.Conn) {
	handle := c.Params("session")
	subscription, err := wh.sessionManager.Subscribe(handle)
	if err != nil {
		c.WriteJSON(WebsocketError{Error: err.Error()})
		c.Close()
		return
	}
	defer wh.sessionManager.Unsubscribe(handle, subscription)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			messageType, message, err := c.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			if err := wh.sessionManager.Submit(handle, string(message)); err != nil {
				logger.Log().Warn("Could not submit console line",
					zap.String(logger.LogKeyContext, logger.LogContextWebSocket),
					zap.String(logger.LogKeySession, handle),
					zap.Error(err),
				)
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-subscription:
			// closed session or a subscriber that fell behind
			if !ok {
				c.Close()
				return
			}
			if err := c.WriteJSON(event); err != nil {
				c.Close()
				return
			}
		case <-done:
			c.Close()
			return
		}
	}
}
