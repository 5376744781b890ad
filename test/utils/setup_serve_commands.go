package test_utils

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/highcard-dev/console/cmd"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func StartAndTestServeCommand(ctx context.Context, t *testing.T, rootCmd *cobra.Command, port int) (bool, error) {
	connectedChan := make(chan struct{}, 1)
	executionDoneChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if CheckHttpServer(port, time.Second*20) == nil {
					connectedChan <- struct{}{}
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		executionDoneChan <- rootCmd.ExecuteContext(ctx)
	}()

	select {
	case <-connectedChan:
		t.Logf("Connected to server")
		return true, nil
	case err := <-executionDoneChan:
		t.Logf("Execution done")
		return false, err
	}
}

func SetupServeCmd(ctx context.Context, t *testing.T, port int, additionalArgs []string) {
	args := append([]string{"serve", "--port", fmt.Sprint(port)}, additionalArgs...)

	b := bytes.NewBufferString("")

	serveCmd := cmd.RootCmd
	serveCmd.SetErr(b)
	serveCmd.SetOut(b)
	serveCmd.SetArgs(args)

	logger.Log().Info("Running serve command", zap.Strings("args", args))

	connected, err := StartAndTestServeCommand(ctx, t, serveCmd, port)
	if !connected {
		t.Fatalf("Failed to connect to console daemon: %v", err)
	}
}
