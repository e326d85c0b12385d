// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	mediaType    = "application/json"
	base64Prefix = "data:" + mediaType + ";base64,"
	plainPrefix  = "data:" + mediaType + ","
)

var (
	errNotDataURI       = errors.New("not a json data uri")
	errMissingDocType   = errors.New("metadata has no type")
	errEmptyMetadataURI = errors.New("empty metadata uri")
)

// now is replaced in tests.
var now = time.Now

// Encode renders m as a self-describing data URI:
// data:application/json;base64,<base64(json)>.
func Encode(m models.DocumentMetadata) (string, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode document metadata: %w", err)
	}

	return base64Prefix + base64.StdEncoding.EncodeToString(payload), nil
}

// Decode parses a metadata URI produced by [Encode] (or the legacy
// percent-encoded form). It never fails: on any problem it returns *fallback
// when given, or [ZeroMetadata] otherwise.
func Decode(uri string, fallback *models.DocumentMetadata) models.DocumentMetadata {
	m, err := decode(uri)
	if err == nil {
		return m
	}
	if fallback != nil {
		return *fallback
	}
	return ZeroMetadata()
}

// ZeroMetadata returns the metadata shown for undecodable records.
func ZeroMetadata() models.DocumentMetadata {
	return models.DocumentMetadata{
		Type:      models.DefaultDocumentType,
		CreatedAt: now().UTC().Format(models.TimestampLayout),
	}
}

func decode(uri string) (models.DocumentMetadata, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return models.DocumentMetadata{}, errEmptyMetadataURI
	}

	var payload []byte
	switch {
	case strings.HasPrefix(uri, base64Prefix):
		raw, err := base64.StdEncoding.DecodeString(uri[len(base64Prefix):])
		if err != nil {
			return models.DocumentMetadata{}, fmt.Errorf("decode base64 metadata: %w", err)
		}
		payload = raw
	case strings.HasPrefix(uri, plainPrefix):
		raw, err := url.PathUnescape(uri[len(plainPrefix):])
		if err != nil {
			return models.DocumentMetadata{}, fmt.Errorf("unescape metadata: %w", err)
		}
		payload = []byte(raw)
	default:
		return models.DocumentMetadata{}, errNotDataURI
	}

	var m models.DocumentMetadata
	if err := json.Unmarshal(payload, &m); err != nil {
		return models.DocumentMetadata{}, fmt.Errorf("unmarshal metadata: %w", err)
	}
	if m.Type == "" {
		return models.DocumentMetadata{}, errMissingDocType
	}

	return m, nil
}
