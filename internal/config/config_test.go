package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, DatasetSourceFile, cfg.Dataset.Source)
	assert.Equal(t, "./webapp/cells.json", cfg.Dataset.Path)
	assert.Equal(t, 30*time.Second, cfg.Dataset.LoadTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.ViewCacheTTL)
	assert.Equal(t, 5, cfg.Map.MinZoom)
	assert.Equal(t, 19, cfg.Map.MaxZoom)
	assert.False(t, cfg.Worker.ReloadEnabled)
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDATASET_SOURCE=http\nDATASET_URL=http://example.test/cells.json\nREDIS_ENABLED=true\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DatasetSourceHTTP, cfg.Dataset.Source)
	assert.Equal(t, "http://example.test/cells.json", cfg.Dataset.URL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_PORT=9090\n"), 0o644))
	t.Setenv("API_PORT", "7070")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"unknown source", map[string]string{"DATASET_SOURCE": "s3"}, "unknown DATASET_SOURCE"},
		{"http without url", map[string]string{"DATASET_SOURCE": "http"}, "DATASET_URL is required"},
		{"postgres without host", map[string]string{"DATASET_SOURCE": "postgres"}, "DB_HOST and DB_NAME"},
		{"reload without interval", map[string]string{"WORKER_RELOAD_ENABLED": "true", "WORKER_RELOAD_INTERVAL": "0"}, "WORKER_RELOAD_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
