package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Load reads the application config from the process environment.
func Load(ctx context.Context) (*AppConfig, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads the application config through an arbitrary lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %d", cfg.Server.Port)
	}
	if cfg.Server.BodySizeLimit <= 0 {
		return nil, fmt.Errorf("invalid SERVER_BODY_LIMIT %d", cfg.Server.BodySizeLimit)
	}
	if err := cfg.HMeasure.Params().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
