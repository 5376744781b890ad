package services_test

import (
	"testing"

	"github.com/highcard-dev/console/internal/core/services"
)

func TestSimulatedMetricsProvider_StablePerServer(t *testing.T) {
	provider := services.NewSimulatedMetricsProvider()

	first := provider.Gauges("srv-1")
	second := provider.Gauges("srv-1")
	if first != second {
		t.Errorf("Expected stable gauges, got %+v and %+v", first, second)
	}

	if first.PlayersOnline < 0 || first.PlayersOnline > first.MaxPlayers {
		t.Errorf("Expected players within 0..%d, got %d", first.MaxPlayers, first.PlayersOnline)
	}
	if first.MemoryUsed > first.MemoryTotal {
		t.Errorf("Expected used memory below total, got %d > %d", first.MemoryUsed, first.MemoryTotal)
	}
	if first.Uptime <= 0 {
		t.Errorf("Expected positive uptime, got %s", first.Uptime)
	}
}

func TestSimulatedMetricsProvider_PlayerNames(t *testing.T) {
	provider := services.NewSimulatedMetricsProvider()

	for _, count := range []int{0, 1, 5, 12, 20} {
		names := provider.PlayerNames("srv-1", count)
		if len(names) != count {
			t.Errorf("Expected %d names, got %d", count, len(names))
		}
		seen := make(map[string]bool)
		for _, name := range names {
			if seen[name] {
				t.Errorf("Expected unique names, got %s twice", name)
			}
			seen[name] = true
		}
	}

	if names := provider.PlayerNames("srv-1", -1); len(names) != 0 {
		t.Errorf("Expected no names for a negative count, got %v", names)
	}
}
