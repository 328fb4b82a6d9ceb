package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) Config {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	return New()
}

func TestConfig_Defaults(t *testing.T) {
	conf := validConfig(t)

	require.NoError(t, conf.Validate())
	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "http://localhost:8081/api", conf.Platform.BaseURL)
	assert.Equal(t, 10*time.Second, conf.Platform.Timeout)
	assert.False(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, conf.Cors.AllowedOrigins)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("PLATFORM_BASE_URL", "https://platform.example.com/api/")
	t.Setenv("PLATFORM_TIMEOUT", "3s")
	t.Setenv("CACHE_CAPACITY", "not-a-number")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("CACHE_ASSIGNMENT_CAPACITY", "500")
	conf := validConfig(t)

	require.NoError(t, conf.Validate())
	assert.Equal(t, "https://platform.example.com/api", conf.Platform.BaseURL)
	assert.Equal(t, 3*time.Second, conf.Platform.Timeout)
	assert.Equal(t, 10000, conf.Cache.Capacity)
	assert.Equal(t, 500, conf.Cache.AssignmentCapacity)
	assert.True(t, conf.Kafka.Enabled)
}

func TestConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown env", func(c *Config) { c.Env = "dev" }},
		{"platform url", func(c *Config) { c.Platform.BaseURL = "not a url" }},
		{"platform timeout", func(c *Config) { c.Platform.Timeout = 0 }},
		{"kafka topic when enabled", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "" }},
		{"postgres user", func(c *Config) { c.Postgres.User = "" }},
		{"cache ttl", func(c *Config) { c.Cache.CartTTL = 0 }},
		{"assignment capacity", func(c *Config) { c.Cache.AssignmentCapacity = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := validConfig(t)
			tc.mutate(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
