// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// id-wallet client. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, an optional JSON file and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable local state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Wallet configures the wallet provider used by the client.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Engine tunes the synchronization engine.
	Engine Engine `envPrefix:"ENGINE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where client logs are appended. Empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI. An empty DSN disables durable
	// storage: session and wallet state then live only for the process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the identity/document backend.
type Adapter struct {
	// HTTPAddress is the backend base URL (scheme optional, e.g.
	// "api.example.com" or "https://api.example.com/v1").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Wallet configures the wallet provider.
type Wallet struct {
	// Address is the public key exposed by the static provider. Empty means
	// no provider is installed.
	// Env: WALLET_ADDRESS
	Address string `env:"ADDRESS"`

	// Provider is the tag recorded on connected accounts.
	// Env: WALLET_PROVIDER
	Provider string `env:"PROVIDER"`

	// NetworkPassphrase is passed to the provider when signing transactions.
	// Env: WALLET_NETWORK_PASSPHRASE
	NetworkPassphrase string `env:"NETWORK_PASSPHRASE"`
}

// Engine tunes the synchronization engine.
type Engine struct {
	// FanOutLimit bounds concurrent permission fetches during hydrate.
	// Env: ENGINE_FAN_OUT_LIMIT
	FanOutLimit int `env:"FAN_OUT_LIMIT"`

	// Reconcile selects the post-mutation strategy: "full" or "incremental".
	// Env: ENGINE_RECONCILE
	Reconcile string `env:"RECONCILE"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RefreshInterval is how often the refresh worker re-hydrates.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Reconcile strategy names accepted by [Engine.Reconcile].
const (
	ReconcileFull        = "full"
	ReconcileIncremental = "incremental"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Wallet: Wallet{
			Provider:          "static",
			NetworkPassphrase: "Test SDF Network ; September 2015",
		},
		Engine: Engine{
			FanOutLimit: 4,
			Reconcile:   ReconcileFull,
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
		App: App{
			LogLevel: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. JSON file (path resolved from sources 2 and 4)
//  4. Command-line flags (overrides, may be nil)
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON(overrides).
		withFlags(overrides).
		build()
}
