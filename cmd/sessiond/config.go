package main

import (
	"fmt"
	"os"
	"strconv"

	"mysession/backend"
)

type Config struct {
	HTTPPort int
	GRPCPort int
	Backend  *backend.Config
}

func LoadConfig() (*Config, error) {
	config := &Config{
		HTTPPort: 8080,
		GRPCPort: 5001,
	}

	if v := os.Getenv("SERVICE_PORT_HTTP"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
		}
		config.HTTPPort = port
	}

	if v := os.Getenv("SERVICE_PORT_GRPC"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_GRPC: %w", err)
		}
		config.GRPCPort = port
	}

	b, err := backend.LoadConfig()
	if err != nil {
		return nil, err
	}
	config.Backend = b

	return config, nil
}
