package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, hmeasure.DefaultBetaParams(), cfg.HMeasure.Params())
	assert.Empty(t, cfg.HMeasure.Options())
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8888, cfg.Server.Port)
	assert.Equal(t, 4<<20, cfg.Server.BodySizeLimit)
	assert.Equal(t, 30*time.Second, cfg.Client.ClientTimeout)
	assert.Equal(t, 3, cfg.Client.RetryMax)
	assert.Equal(t, "http://127.0.0.1:8888", cfg.Client.ServerURL)
	assert.Equal(t, "prod", cfg.Environment)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"HMEASURE_ALPHA":            "1",
		"HMEASURE_BETA":             "3.5",
		"HMEASURE_CLASS0_PRIOR":     "0.2",
		"HMEASURE_CLASS1_PRIOR":     "0.8",
		"HMEASURE_QUADRATURE_NODES": "32",
		"SERVER_PORT":               "9000",
		"CLIENT_TIMEOUT":            "5s",
		"ENVIRONMENT":               "dev",
	}))
	require.NoError(t, err)

	assert.Equal(t, hmeasure.BetaParams{Alpha: 1, Beta: 3.5}, cfg.HMeasure.Params())
	assert.Len(t, cfg.HMeasure.Options(), 2)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Client.ClientTimeout)
	assert.Equal(t, "dev", cfg.Environment)

	// The options must produce a working evaluator with the fixed priors.
	e, err := hmeasure.New(cfg.HMeasure.Params(), cfg.HMeasure.Options()...)
	require.NoError(t, err)
	res, err := e.Compute(hmeasure.BinaryClassScores{Class0: []float64{0.1, 0.4}, Class1: []float64{0.3, 0.9}})
	require.NoError(t, err)
	assert.Equal(t, hmeasure.Priors{Class0: 0.2, Class1: 0.8}, res.Priors)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port out of range": {"SERVER_PORT": "70000"},
		"zero body limit":   {"SERVER_BODY_LIMIT": "0"},
		"negative alpha":    {"HMEASURE_ALPHA": "-1"},
		"not a number":      {"HMEASURE_BETA": "two"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
