package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Port:       "8374",
		APIBaseURL: "http://localhost:3000",
		APITimeout: 15 * time.Second,
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing base URL", func(c *Config) { c.APIBaseURL = "" }, true},
		{"relative base URL", func(c *Config) { c.APIBaseURL = "/posts" }, true},
		{"zero timeout", func(c *Config) { c.APITimeout = 0 }, true},
		{"negative freshness", func(c *Config) { c.CacheFreshness = -time.Minute }, true},
		{"tracing with bad exporter", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "jaeger"
		}, true},
		{"tracing with otlp exporter", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "otlp"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	defer viper.Reset()

	t.Setenv("API_BASE_URL", "http://posts.internal:9000")
	t.Setenv("CACHE_FRESHNESS", "90s")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "http://posts.internal:9000", c.APIBaseURL)
	assert.Equal(t, 90*time.Second, c.CacheFreshness)
	assert.Equal(t, "8374", c.Port)
}
