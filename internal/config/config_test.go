package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "developer", cfg.Site.Variant)
	assert.Equal(t, "messages", cfg.Firestore.Collection)
	assert.False(t, cfg.Firestore.Enabled())
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 8760*time.Hour, cfg.Analytics.Retention)
	assert.Equal(t, 5*time.Second, cfg.Tour.CallTimeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SITE_VARIANT", "finance")
	t.Setenv("FIRESTORE_PROJECT_ID", "portfolio-form")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TOUR_MIN_READ", "4s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "finance", cfg.Site.Variant)
	assert.True(t, cfg.Firestore.Enabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 4*time.Second, cfg.Tour.MinRead)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("env: production\nserver:\n  port: \"7000\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestTourConfig_Apply(t *testing.T) {
	base := tour.DefaultTiming()

	unchanged := TourConfig{}.Apply(base)
	assert.Equal(t, base, unchanged)

	out := TourConfig{PerWord: 80 * time.Millisecond, EndBuffer: 3 * time.Second}.Apply(base)
	assert.Equal(t, 80*time.Millisecond, out.PerWord)
	assert.Equal(t, 3*time.Second, out.EndBuffer)
	assert.Equal(t, base.MinRead, out.MinRead)
}
