package config

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("PANBANK_STORE_PATH", "/var/lib/panbank/database.json")
	t.Setenv("PANBANK_LOG_LEVEL", "debug")

	cfg, err := Load(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/panbank/database.json", cfg.Store.Path)
	assert.Equal(t, "backups", cfg.Store.BackupDir, "unset values fall back to defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}
