package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"SERVICE_PORT_HTTP", "SERVICE_PORT_GRPC", "STORE_BACKEND", "SESSION_CONFLICT_POLICY"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 5001, cfg.GRPCPort)
	require.NotNil(t, cfg.Backend)
	assert.Equal(t, "memory", cfg.Backend.Store)
}

func TestLoadConfig_OverridePorts(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "9090")
	t.Setenv("SERVICE_PORT_GRPC", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 9000, cfg.GRPCPort)
}

func TestLoadConfig_InvalidSERVICE_PORT_HTTP(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_InvalidSERVICE_PORT_GRPC(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICE_PORT_GRPC", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_BackendErrorPropagates(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_CONFLICT_POLICY", "first-wins")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
