// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the id-wallet client runtime.
//
// It wires configuration, logging, local storage, the backend client, the
// wallet adapter, the synchronization engine and the background refresh
// worker into a single [App] with one lifecycle.
package client
