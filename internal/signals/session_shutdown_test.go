package signals

import (
	"testing"
	"time"

	mock_ports "github.com/highcard-dev/console/test/mock"
	"go.uber.org/mock/gomock"
)

func TestSignalHandler_ShutdownClosesSessionsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionManager := mock_ports.NewMockSessionManagerInterface(ctrl)
	sessionManager.EXPECT().List().Return(nil).Times(1)
	sessionManager.EXPECT().CloseAll().Times(1)

	sh := NewSignalHandler(sessionManager, time.Second)
	sh.Listen()

	sh.Shutdown()
	sh.Shutdown()
}
