package config

import (
	"fmt"
	"time"

	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/spf13/viper"
)

const (
	KeyMetricsSource       = "metrics.source"
	KeyMetricsEnabled      = "metrics.enabled"
	KeySessionsIdleTimeout = "sessions.idle-timeout"
	KeySessionsReap        = "sessions.reap-interval"

	MetricsSourceSimulated = "simulated"
	MetricsSourceHost      = "host"
)

type Config struct {
	MetricsSource  string
	MetricsEnabled bool
	IdleTimeout    time.Duration
	ReapInterval   time.Duration
	Plans          map[domain.TransitionKind]domain.StepPlan
}

func stepKey(kind domain.TransitionKind, step string) string {
	return fmt.Sprintf("lifecycle.%s.%s", kind, step)
}

// SetDefaults registers every configurable value, step delays included, so they show up in
// a written config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMetricsSource, MetricsSourceSimulated)
	v.SetDefault(KeyMetricsEnabled, true)
	v.SetDefault(KeySessionsIdleTimeout, 30*time.Minute)
	v.SetDefault(KeySessionsReap, time.Minute)

	for kind, plan := range domain.DefaultStepPlans() {
		for _, step := range plan.Steps {
			v.SetDefault(stepKey(kind, step.Name), step.Delay)
		}
	}
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		MetricsSource:  v.GetString(KeyMetricsSource),
		MetricsEnabled: v.GetBool(KeyMetricsEnabled),
		IdleTimeout:    v.GetDuration(KeySessionsIdleTimeout),
		ReapInterval:   v.GetDuration(KeySessionsReap),
		Plans:          domain.DefaultStepPlans(),
	}

	if cfg.MetricsSource != MetricsSourceSimulated && cfg.MetricsSource != MetricsSourceHost {
		return nil, fmt.Errorf("invalid %s %q, expected %s or %s", KeyMetricsSource, cfg.MetricsSource, MetricsSourceSimulated, MetricsSourceHost)
	}
	if cfg.IdleTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeySessionsIdleTimeout)
	}
	if cfg.ReapInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeySessionsReap)
	}

	for kind, plan := range cfg.Plans {
		for i, step := range plan.Steps {
			delay := v.GetDuration(stepKey(kind, step.Name))
			if delay < 0 {
				return nil, fmt.Errorf("%s must not be negative", stepKey(kind, step.Name))
			}
			plan.Steps[i].Delay = delay
		}
	}

	return cfg, nil
}
