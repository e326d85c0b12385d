package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"connect"}, {"disconnect"}, {"login"}, {"signup"}, {"logout"},
		{"identity", "register"}, {"identity", "show"},
		{"doc", "create"}, {"doc", "share"}, {"doc", "revoke"}, {"doc", "list"},
		{"status"}, {"sign"}, {"watch"}, {"version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestNewRootCmd_ConfigFlags(t *testing.T) {
	root := newRootCmd()

	require.NoError(t, root.PersistentFlags().Parse([]string{"--server", "api.example.com", "--reconcile", "incremental"}))

	server, err := root.PersistentFlags().GetString("server")
	require.NoError(t, err)
	assert.Equal(t, "api.example.com", server)
}

func TestParseDocumentID(t *testing.T) {
	id, err := parseDocumentID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := parseDocumentID(raw)
		assert.Error(t, err, raw)
	}
}

func TestBuildInfo_Unset(t *testing.T) {
	info := buildInfo()
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
