package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[booking]
default_venue = "Court 2"

[conflicts]
buffer_minutes = 90

[admin]
token = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "Court 2", cfg.Booking.DefaultVenue)
	assert.Equal(t, 90, cfg.Conflicts.BufferMinutes)
	// не указанные в файле значения остаются по умолчанию
	assert.Equal(t, 100.0, cfg.Booking.DefaultPrice)
	assert.Equal(t, "06:00", cfg.Booking.FirstSlot)
	assert.Equal(t, "23:00", cfg.Booking.LastSlot)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[admin]
token = "from-file"
`)
	t.Setenv("ARENA_ADMIN_TOKEN", "from-env")
	t.Setenv("ARENA_SERVER_HTTPPORT", "7070")
	t.Setenv("ARENA_CORS_ALLOWEDORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Admin.Token)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ARENA_ADMIN_TOKEN", "x")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, "[server\nhttp_port = ")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing admin token", func(c *Config) { c.Admin.Token = "" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"unknown timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"negative price", func(c *Config) { c.Booking.DefaultPrice = -1 }},
		{"zero buffer", func(c *Config) { c.Conflicts.BufferMinutes = 0 }},
		{"zero step", func(c *Config) { c.Booking.StepMinutes = 0 }},
		{"rate limit without burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Admin.Token = "secret"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "arena", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=arena sslmode=disable", c.DSN())
}
