package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":             "www.example:9000",
		"database_dsn":                   "postgres://example/authgate",
		"secret_key":                     "my_secret_key",
		"access_token_validity_duration": "45m",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://example/authgate", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{
			"secret_key": "only_this",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only_this", cfg.SecretKey)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 1*time.Hour, cfg.AccessTokenValidityDuration)
	})

	t.Run("no flag no file", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	})

	t.Run("broken json panics", func(t *testing.T) {
		broken := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(broken, []byte("{oops"), 0o600))
		os.Args = []string{"testbin", "-c", broken}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})
}
