// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the
// [StructuredConfig] they write into. Pass the result to [GetClientConfig]
// after the flag set has been parsed; unset flags stay zero and do not
// override other sources.
//
// Flags:
//
//	-c/--config         json file path with configs
//	-s/--server         backend address
//	--request-timeout   backend request timeout (e.g. "15s")
//	-d/--db             local sqlite DSN
//	-w/--wallet         wallet address exposed by the static provider
//	--wallet-provider   provider tag
//	--network-passphrase passphrase used for signing
//	--fan-out           concurrent permission fetches during hydrate
//	--reconcile         post-mutation strategy: full | incremental
//	--refresh-interval  background refresh interval
//	--log-file          client log file
//	--log-level         client log level
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&cfg.Adapter.HTTPAddress, "server", "s", "", "Backend address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Backend request timeout (e.g. 15s)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Local SQLite DSN")
	fs.StringVarP(&cfg.Wallet.Address, "wallet", "w", "", "Wallet address exposed by the static provider")
	fs.StringVar(&cfg.Wallet.Provider, "wallet-provider", "", "Wallet provider tag")
	fs.StringVar(&cfg.Wallet.NetworkPassphrase, "network-passphrase", "", "Network passphrase used for signing")
	fs.IntVar(&cfg.Engine.FanOutLimit, "fan-out", 0, "Concurrent permission fetches during hydrate")
	fs.StringVar(&cfg.Engine.Reconcile, "reconcile", "", "Post-mutation strategy: full or incremental")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Client log level")

	return cfg
}
