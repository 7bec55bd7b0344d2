package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlexplorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: explorer-test
store:
  driver: duckdb
  dsn: /tmp/main.duckdb
connections:
  - name: sales
    dsn: /tmp/sales.duckdb
  - name: scratch
    dsn: ""
journal:
  enabled: true
  dir: /tmp/journal
  author_name: Tester
export:
  s3:
    region: eu-west-1
    endpoint: http://localhost:9000
log:
  level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "explorer-test", cfg.AppName)
	assert.Equal(t, "duckdb", cfg.Store.Driver)
	assert.Equal(t, "/tmp/main.duckdb", cfg.Store.DSN)
	require.Len(t, cfg.Connections, 2)
	assert.Equal(t, "sales", cfg.Connections[0].Name)

	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/journal", cfg.Journal.Dir)
	assert.Equal(t, "Tester", cfg.Journal.AuthorName)
	assert.Equal(t, "sqlexplorer@localhost", cfg.Journal.AuthorEmail)

	assert.Equal(t, "eu-west-1", cfg.Export.S3.Region)
	assert.Equal(t, "http://localhost:9000", cfg.Export.S3.Endpoint)
	assert.Equal(t, "debug", cfg.Log.Level)

	dsn, ok := cfg.Connection("sales")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/sales.duckdb", dsn)

	dsn, ok = cfg.Connection("default")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/main.duckdb", dsn)

	_, ok = cfg.Connection("unknown")
	assert.False(t, ok)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sqlexplorer", cfg.AppName)
	assert.Equal(t, "duckdb", cfg.Store.Driver)
	assert.Empty(t, cfg.Store.DSN)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)

	missing, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg, missing)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SQLEXPLORER_STORE_DSN", "/data/env.duckdb")
	t.Setenv("SQLEXPLORER_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/data/env.duckdb", cfg.Store.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
