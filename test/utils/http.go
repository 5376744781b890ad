package test_utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/highcard-dev/console/internal/core/domain"
)

func CheckHttpServer(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c, err := net.Dial("tcp", "localhost:"+strconv.Itoa(port))
		if err == nil {
			c.Close()
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return errors.New("timeout reached while checking HTTP server")
}

func CheckHttpServerShutdown(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c, err := net.Dial("tcp", "localhost:"+strconv.Itoa(port))
		if err != nil {
			return nil
		}
		c.Close()
		time.Sleep(1 * time.Second)
	}
	return errors.New("timeout reached while checking HTTP server shutdown")
}

func OpenSession(host string, serverId string, serverName string) (*domain.SessionInfo, error) {
	body, err := json.Marshal(map[string]string{"serverId": serverId, "serverName": serverName})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(fmt.Sprintf("http://%s/api/v1/sessions", host), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var info domain.SessionInfo
	err = json.NewDecoder(resp.Body).Decode(&info)
	return &info, err
}

func ConnectWebsocket(addr string, path string) (*websocket.Conn, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: path}

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	return c, err
}

// WaitForLogEntry reads log events until an entry containing text shows up.
func WaitForLogEntry(wsClient *websocket.Conn, text string, timeout time.Duration) error {
	wsClient.SetReadDeadline(time.Now().Add(timeout))
	defer wsClient.SetReadDeadline(time.Time{})

	for {
		var event domain.LogEvent
		if err := wsClient.ReadJSON(&event); err != nil {
			return fmt.Errorf("waiting for log entry %q: %w", text, err)
		}
		for _, entry := range event.Entries {
			if strings.Contains(entry.Text, text) {
				return nil
			}
		}
	}
}
