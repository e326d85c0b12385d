// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command idwallet is the command-line client of the identity wallet. It
// binds a wallet, keeps the backend session and drives identity, document
// and permission operations through the synchronization engine.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/pterm/pterm"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
