package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gorilla/websocket"
	"github.com/highcard-dev/console/cmd/tui"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/handler"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var attachHost string

var AttachCommand = &cobra.Command{
	Use:   "attach <server-id> <server-name>",
	Short: "Attach to a console session of a running daemon",
	Long: `Opens a session on a daemon started with "serve", prints its log as it
grows and submits every line read from stdin. The session is closed
when stdin ends.`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := openRemoteSession(attachHost, args[0], args[1])
		if err != nil {
			return err
		}
		defer closeRemoteSession(attachHost, info.Handle)

		wsURL := url.URL{Scheme: "ws", Host: attachHost, Path: "/ws/v1/sessions/" + info.Handle}
		conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", wsURL.String(), err)
		}
		defer conn.Close()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				var event domain.LogEvent
				if err := conn.ReadJSON(&event); err != nil {
					logger.Log().Debug("Attach stream ended", zap.String(logger.LogKeyContext, logger.LogContextWebSocket), zap.Error(err))
					return
				}
				for _, entry := range event.Entries {
					fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEntry(entry))
				}
			}
		}()

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := conn.WriteMessage(websocket.TextMessage, scanner.Bytes()); err != nil {
				return err
			}
		}

		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		<-done
		return scanner.Err()
	},
}

func openRemoteSession(host string, serverId string, serverName string) (*domain.SessionInfo, error) {
	body, err := json.Marshal(handler.OpenSessionBody{ServerId: serverId, ServerName: serverName})
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(fmt.Sprintf("http://%s/api/v1/sessions", host), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to open session, status %d", resp.StatusCode)
	}

	var info domain.SessionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func closeRemoteSession(host string, handle string) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("http://%s/api/v1/sessions/%s", host, handle), nil)
	if err != nil {
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Log().Warn("Failed to close session", zap.String(logger.LogKeySession, handle), zap.Error(err))
		return
	}
	resp.Body.Close()
}

func init() {
	AttachCommand.Flags().StringVarP(&attachHost, "host", "", "localhost:8081", "Address of the console daemon")
}
