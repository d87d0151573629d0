package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("all flags set", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", ":9090", "-s", "flag-secret", "-t", "30", "-o", "https://a.example,https://b.example"}

		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":9090", c.EndpointAddr)
		assert.Equal(t, "flag-secret", c.SecretKey)
		assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSAllowOrigins)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":8080", c.EndpointAddr)
		assert.Equal(t, "dev-secret-key-change", c.SecretKey)
		assert.Equal(t, 12*time.Hour, c.TokenValidityDuration)
		assert.Equal(t, []string{"*"}, c.CORSAllowOrigins)
	})

	t.Run("unknown flags ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-z", "1", "-a", ":7070"}

		var c Config
		c.LoadDefaults()
		parseFlags(&c)

		assert.Equal(t, ":7070", c.EndpointAddr)
	})
}
