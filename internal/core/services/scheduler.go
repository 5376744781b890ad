package services

import (
	"time"

	"github.com/highcard-dev/console/internal/core/ports"
)

// TimerScheduler runs step continuations on runtime timers.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
