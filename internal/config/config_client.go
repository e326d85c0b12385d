// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is the path logs are appended to; empty means stderr.
	LogFile string
	// LogLevel is the minimum emitted level.
	LogLevel string
}

// ClientAdapter holds network settings used by the backend client.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string; empty disables durable storage.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWallet configures the wallet provider.
type ClientWallet struct {
	Address           string
	Provider          string
	NetworkPassphrase string
}

// ClientEngine tunes the synchronization engine.
type ClientEngine struct {
	FanOutLimit int
	Reconcile   string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Wallet  ClientWallet
	Engine  ClientEngine
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. overrides carries values bound from
// command-line flags and may be nil.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Wallet: ClientWallet{
			Address:           cfg.Wallet.Address,
			Provider:          cfg.Wallet.Provider,
			NetworkPassphrase: cfg.Wallet.NetworkPassphrase,
		},
		Engine: ClientEngine{
			FanOutLimit: cfg.Engine.FanOutLimit,
			Reconcile:   cfg.Engine.Reconcile,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
