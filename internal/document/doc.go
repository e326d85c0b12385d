// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document holds the pure, I/O-free pieces of document tokenization:
// the content hasher and the metadata URI codec.
//
// Both are deterministic given their inputs (Decode additionally reads the
// clock for its zero-value fallback). Any change to the canonical hash form is
// a breaking change and must bump [HashVersion].
package document
