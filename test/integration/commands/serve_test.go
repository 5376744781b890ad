//go:build integration

package command_test

import (
	"context"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/highcard-dev/console/internal/utils/logger"
	test_utils "github.com/highcard-dev/console/test/utils"
)

const servePort = 8081

func TestServeCommand(t *testing.T) {
	logger.Log(logger.WithStructuredLogging())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	test_utils.SetupServeCmd(ctx, t, servePort, []string{"--shutdown-wait", "2s"})

	host := fmt.Sprintf("localhost:%d", servePort)
	info, err := test_utils.OpenSession(host, "srv-1", "Alpha")
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}

	wsClient, err := test_utils.ConnectWebsocket(host, "/ws/v1/sessions/"+info.Handle)
	if err != nil {
		t.Fatalf("Failed to connect to session stream: %v", err)
	}
	defer wsClient.Close()

	if err := test_utils.WaitForLogEntry(wsClient, "Welcome to Alpha Console", 5*time.Second); err != nil {
		t.Fatal(err)
	}

	for _, step := range []struct {
		command string
		expect  string
	}{
		{"stop", "Server stopped successfully."},
		{"start", "Server started successfully."},
		{"restart", "Server restarted successfully."},
	} {
		if err := wsClient.WriteMessage(websocket.TextMessage, []byte(step.command)); err != nil {
			t.Fatalf("Failed to submit %s: %v", step.command, err)
		}
		if err := test_utils.WaitForLogEntry(wsClient, step.expect, 10*time.Second); err != nil {
			t.Fatal(err)
		}
	}

	syscall.Kill(syscall.Getpid(), syscall.SIGTERM)

	if err := test_utils.CheckHttpServerShutdown(servePort, 20*time.Second); err != nil {
		t.Fatalf("Server did not shut down: %v", err)
	}
}
