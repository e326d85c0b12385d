// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before it is used.
//
// Only cross-cutting invariants live here; client-specific rules are in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Engine.FanOutLimit <= 0 {
		return ErrInvalidEngineConfigs
	}
	switch cfg.Engine.Reconcile {
	case ReconcileFull, ReconcileIncremental:
	default:
		return ErrInvalidEngineConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
