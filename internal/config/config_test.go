package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// no config file next to the test binary, so defaults apply
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "miniblog", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "blog.db", cfg.SQLite.Path)
	assert.Equal(t, "blog_session", cfg.Auth.SessionCookie)
	assert.Empty(t, cfg.Auth.SessionSecret)
	assert.Equal(t, "Asia/Tokyo", cfg.App.TimeZone)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("SESSION_SECRET", "fixed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "/tmp/test.db", cfg.SQLite.Path)
	assert.Equal(t, "fixed", cfg.Auth.SessionSecret)
}

func TestEnvOverrideBadInt(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
}
