package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.SecretKey, "dev-secret-key-change")
	assert.Equal(t, c.TokenValidityDuration, 12*time.Hour)
	assert.Equal(t, c.CORSAllowOrigins, []string{"*"})
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.SecretKey, "dev-secret-key-change")
	assert.Equal(t, c.TokenValidityDuration, 12*time.Hour)
	assert.Equal(t, c.CORSAllowOrigins, []string{"*"})
}
