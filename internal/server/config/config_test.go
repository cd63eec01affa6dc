package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrHTTP, ":8080")
	assert.Equal(t, c.DatabaseDSN, "")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AccessTokenValidityDuration, 1*time.Hour)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrHTTP, ":8080")
	assert.Equal(t, c.DatabaseDSN, "")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AccessTokenValidityDuration, 1*time.Hour)
}
