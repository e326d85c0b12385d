package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampLayout_MillisecondUTC(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 7_000_000, time.FixedZone("CST", -6*3600))

	formatted := at.UTC().Format(TimestampLayout)
	assert.Equal(t, "2026-03-01T18:00:00.007Z", formatted)

	parsed, err := time.Parse(TimestampLayout, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))
}
