// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// AppConfig is the full environment of the hmeasure binaries.
type AppConfig struct {
	HMeasure    HMeasureEnvConfig
	Server      ServerEnvConfig
	Client      ClientEnvConfig
	Environment string `env:"ENVIRONMENT, default=prod"`
}

// HMeasureEnvConfig holds the default cost density and priors.
type HMeasureEnvConfig struct {
	Alpha float64 `env:"HMEASURE_ALPHA, default=2"`
	Beta  float64 `env:"HMEASURE_BETA, default=2"`
	// Zero priors are derived from the class sample sizes.
	Class0Prior     float64 `env:"HMEASURE_CLASS0_PRIOR, default=0"`
	Class1Prior     float64 `env:"HMEASURE_CLASS1_PRIOR, default=0"`
	QuadratureNodes int     `env:"HMEASURE_QUADRATURE_NODES, default=0"`
}

// ServerEnvConfig configures the server.
type ServerEnvConfig struct {
	Host          string `env:"SERVER_HOST, default=0.0.0.0"`
	Port          int    `env:"SERVER_PORT, default=8888"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT, default=4194304"`
}

// ClientEnvConfig configures the client.
type ClientEnvConfig struct {
	ServerURL     string        `env:"HMEASURE_SERVER_URL, default=http://127.0.0.1:8888"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT, default=30s"`
	RetryMax      int           `env:"CLIENT_RETRY_MAX, default=3"`
}

// Params returns the configured cost density shapes.
func (c HMeasureEnvConfig) Params() hmeasure.BetaParams {
	return hmeasure.BetaParams{Alpha: c.Alpha, Beta: c.Beta}
}

// Options translates the configuration into evaluator options.
func (c HMeasureEnvConfig) Options() []hmeasure.Option {
	var opts []hmeasure.Option
	if c.Class0Prior != 0 || c.Class1Prior != 0 {
		opts = append(opts, hmeasure.WithPriors(c.Class0Prior, c.Class1Prior))
	}
	if c.QuadratureNodes > 0 {
		opts = append(opts, hmeasure.WithQuadrature(c.QuadratureNodes))
	}
	return opts
}
