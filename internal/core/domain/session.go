package domain

import "time"

type SessionInfo struct {
	Handle     string         `json:"handle" validate:"required"`
	ServerId   string         `json:"serverId" validate:"required"`
	ServerName string         `json:"serverName" validate:"required"`
	State      LifecycleState `json:"state" validate:"required"`
	OpenedAt   time.Time      `json:"openedAt"`
} //@name SessionInfo

// ServerGauges are the display values used by status and players output.
type ServerGauges struct {
	Uptime        time.Duration
	CpuPercent    float64
	MemoryUsed    uint64
	MemoryTotal   uint64
	PlayersOnline int
	MaxPlayers    int
}
