// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectIdentityMetadataQuery(t *testing.T) {
	query, args, err := buildSelectIdentityMetadataQuery("GADDR")
	require.NoError(t, err)

	require.Equal(t, []any{"GADDR"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select email, rfc")
	require.Contains(t, q, "from identity_metadata")
	require.Contains(t, q, "where address = ?")
	require.Contains(t, q, "limit 1")
	// sqlite placeholders, never $1
	require.NotContains(t, query, "$1")
}

func Test_buildUpsertIdentityMetadataQuery(t *testing.T) {
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))

	query, args, err := buildUpsertIdentityMetadataQuery("GADDR", models.IdentityMetadata{Email: "a@x.com", RFC: "RFC1"}, at)
	require.NoError(t, err)

	require.Equal(t, []any{"GADDR", "a@x.com", "RFC1", "2026-05-01T09:00:00Z"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into identity_metadata (address,email,rfc,updated_at)")
	require.Contains(t, q, "values (?,?,?,?)")
	require.Contains(t, q, "on conflict(address) do update set")
}

func Test_buildClearIdentityMetadataQuery(t *testing.T) {
	query, args, err := buildClearIdentityMetadataQuery()
	require.NoError(t, err)

	require.Empty(t, args)
	require.Equal(t, "delete from identity_metadata", strings.ToLower(query))
}
