package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("command not found")

var ErrInvalidTransition = errors.New("invalid transition")
var ErrAlreadyRunning = fmt.Errorf("server is already running: %w", ErrInvalidTransition)
var ErrAlreadyStopped = fmt.Errorf("server is already stopped: %w", ErrInvalidTransition)
var ErrTransitionBusy = errors.New("another transition is in progress")

var ErrSessionClosed = errors.New("session closed")
var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidIdentity = errors.New("server id and server name are required")
