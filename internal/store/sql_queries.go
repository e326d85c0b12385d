package store

import (
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	getKV = `SELECT value FROM kv WHERE key = ?`

	upsertKV = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	deleteKV = `DELETE FROM kv WHERE key = ?`
)

const identityMetadataTable = "identity_metadata"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectIdentityMetadataQuery(address string) (string, []any, error) {
	return psql.
		Select("email", "rfc").
		From(identityMetadataTable).
		Where(sq.Eq{"address": address}).
		Limit(1).
		ToSql()
}

func buildUpsertIdentityMetadataQuery(address string, meta models.IdentityMetadata, at time.Time) (string, []any, error) {
	return psql.
		Insert(identityMetadataTable).
		Columns("address", "email", "rfc", "updated_at").
		Values(address, meta.Email, meta.RFC, at.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(address) DO UPDATE SET email = excluded.email, rfc = excluded.rfc, updated_at = excluded.updated_at").
		ToSql()
}

func buildClearIdentityMetadataQuery() (string, []any, error) {
	return psql.Delete(identityMetadataTable).ToSql()
}
