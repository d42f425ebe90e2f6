package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "moodmate.db", c.DataDir)
	assert.Equal(t, "http://127.0.0.1:8080/api/analyze-journal", c.AnalyzeEndpointAddr)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from -config flag", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"data_dir":              "/tmp/moods",
			"analyze_endpoint_addr": "http://proxy:9000/api/analyze-journal",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/tmp/moods", cfg.DataDir)
		assert.Equal(t, "http://proxy:9000/api/analyze-journal", cfg.AnalyzeEndpointAddr)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DataDir: "keep", AnalyzeEndpointAddr: "keep-too"}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.DataDir)
		assert.Equal(t, "keep-too", cfg.AnalyzeEndpointAddr)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("partial JSON keeps defaults for missing fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"data_dir": "/tmp/only-dir"})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/tmp/only-dir", cfg.DataDir)
		assert.Equal(t, "http://127.0.0.1:8080/api/analyze-journal", cfg.AnalyzeEndpointAddr)
	})
}
