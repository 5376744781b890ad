package cmd

import (
	"github.com/highcard-dev/console/internal/config"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/core/services"
)

func newMetricsProvider(cfg *config.Config) ports.MetricsProvider {
	if cfg.MetricsSource == config.MetricsSourceHost {
		return services.NewHostMetricsProvider()
	}
	return services.NewSimulatedMetricsProvider()
}
