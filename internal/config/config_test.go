package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ServerAddr:       ":8080",
		ShutdownTimeout:  10 * time.Second,
		ContactDBPath:    "data/contact.db",
		LogMode:          "development",
		LogLevel:         "info",
		PageSizeDefault:  6,
		PageSizeMax:      50,
		FeaturedServices: 3,
		RecentProjects:   3,
	}, cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"SERVER_ADDR":       "127.0.0.1:9000",
		"CATALOG_PATH":      "/etc/agency/catalog.yaml",
		"LOG_MODE":          "production",
		"LOG_FILE":          "/var/log/agency.log",
		"PAGE_SIZE_DEFAULT": "10",
		"PAGE_SIZE_MAX":     "20",
		"SHUTDOWN_TIMEOUT":  "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "/etc/agency/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "production", cfg.LogMode)
	assert.Equal(t, "/var/log/agency.log", cfg.LogFile)
	assert.Equal(t, 10, cfg.PageSizeDefault)
	assert.Equal(t, 20, cfg.PageSizeMax)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr string
	}{
		{"not a number", map[string]string{"PAGE_SIZE_MAX": "lots"}, "parse env"},
		{"zero page size", map[string]string{"PAGE_SIZE_DEFAULT": "0"}, "PAGE_SIZE_DEFAULT must be positive"},
		{"default above max", map[string]string{"PAGE_SIZE_DEFAULT": "60"}, "exceeds PAGE_SIZE_MAX"},
		{"negative featured", map[string]string{"FEATURED_SERVICES": "-1"}, "FEATURED_SERVICES must not be negative"},
		{"unknown log mode", map[string]string{"LOG_MODE": "verbose"}, "LOG_MODE must be development or production"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RECENT_PROJECTS=5\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("RECENT_PROJECTS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RecentProjects)
}

func TestLoadIgnoresMissingDotenv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
