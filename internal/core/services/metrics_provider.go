package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/utils/logger"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"
)

const (
	simulatedMemoryTotal = 8 << 30
	simulatedMaxPlayers  = 20
)

var playerNamePool = []string{
	"Steve", "Alex", "Notch", "Herobrine", "Dinnerbone", "Grumm",
	"Jeb", "Technoblade", "Dream", "Tommy", "Wilbur", "Philza",
}

// SimulatedMetricsProvider derives stable display values from the server id, so the same
// server always shows the same numbers.
type SimulatedMetricsProvider struct{}

func NewSimulatedMetricsProvider() *SimulatedMetricsProvider {
	return &SimulatedMetricsProvider{}
}

func seedFor(serverId string) int64 {
	h := fnv.New64a()
	h.Write([]byte(serverId))
	return int64(h.Sum64())
}

func (SimulatedMetricsProvider) Gauges(serverId string) domain.ServerGauges {
	r := rand.New(rand.NewSource(seedFor(serverId)))

	uptime := time.Duration(1+r.Intn(30))*24*time.Hour + time.Duration(r.Intn(24))*time.Hour
	usedPercent := 20 + r.Intn(70)

	return domain.ServerGauges{
		Uptime:        uptime,
		CpuPercent:    float64(5 + r.Intn(85)),
		MemoryUsed:    uint64(simulatedMemoryTotal) * uint64(usedPercent) / 100,
		MemoryTotal:   simulatedMemoryTotal,
		PlayersOnline: r.Intn(simulatedMaxPlayers + 1),
		MaxPlayers:    simulatedMaxPlayers,
	}
}

// PlayerNames returns exactly count names. Names repeat the pool with a numeric suffix once
// the pool is exhausted.
func (SimulatedMetricsProvider) PlayerNames(serverId string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	offset := int(uint64(seedFor(serverId)) % uint64(len(playerNamePool)))
	names := make([]string, count)
	for i := 0; i < count; i++ {
		name := playerNamePool[(offset+i)%len(playerNamePool)]
		if round := i / len(playerNamePool); round > 0 {
			name = fmt.Sprintf("%s%d", name, round+1)
		}
		names[i] = name
	}
	return names
}

// HostMetricsProvider reports the gauges of the machine the daemon runs on. Players are
// still simulated, there is no game server to ask.
type HostMetricsProvider struct {
	SimulatedMetricsProvider
}

func NewHostMetricsProvider() *HostMetricsProvider {
	return &HostMetricsProvider{}
}

func (p HostMetricsProvider) Gauges(serverId string) domain.ServerGauges {
	gauges := p.SimulatedMetricsProvider.Gauges(serverId)

	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		gauges.CpuPercent = percent[0]
	} else if err != nil {
		logger.Log().Warn("Could not read cpu usage", zap.String(logger.LogKeyContext, logger.LogContextMonitor), zap.Error(err))
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		gauges.MemoryUsed = vm.Used
		gauges.MemoryTotal = vm.Total
	} else {
		logger.Log().Warn("Could not read memory usage", zap.String(logger.LogKeyContext, logger.LogContextMonitor), zap.Error(err))
	}

	if uptime, err := host.Uptime(); err == nil {
		gauges.Uptime = time.Duration(uptime) * time.Second
	}

	return gauges
}
