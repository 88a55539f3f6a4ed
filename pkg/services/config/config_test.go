package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry_Profiles(t *testing.T) {
	path := writeFile(t, "config", `
[default]
report_url = https://quality.example.com
auth_url = https://auth.example.com
artifacts_dir = /tmp/artifacts
token_file = /tmp/token

[staging]
report_url = https://staging.example.com
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "staging"}, profiles)

	profile, err := registry.GetProfile(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "https://quality.example.com", profile.ReportURL)
	assert.Equal(t, "https://auth.example.com", profile.AuthURL)
	assert.Equal(t, "/tmp/artifacts", profile.ArtifactsDir)
	assert.Equal(t, "/tmp/token", profile.TokenFile)
}

func TestRegistry_ProfileDefaults(t *testing.T) {
	path := writeFile(t, "config", `
[default]
report_url = https://quality.example.com
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, profile.ReportURL, profile.AuthURL)
	assert.Equal(t, ".", profile.ArtifactsDir)
	assert.NotEmpty(t, profile.TokenFile)
}

func TestRegistry_MissingProfile(t *testing.T) {
	path := writeFile(t, "config", `
[default]
report_url = https://quality.example.com
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestRegistry_MissingReportURL(t *testing.T) {
	path := writeFile(t, "config", `
[default]
auth_url = https://auth.example.com
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "default")
	assert.ErrorContains(t, err, "report_url")
}

func TestLoadServerConfig(t *testing.T) {
	path := writeFile(t, "server.yaml", `
addr: ":9090"
report_url: https://quality.example.com
shutdown_seconds: 5
`)

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://quality.example.com", cfg.ReportURL)
	assert.Equal(t, 5, cfg.ShutdownSeconds)
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	path := writeFile(t, "server.yaml", `report_url: https://quality.example.com`)

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.ShutdownSeconds)
}

func TestLoadServerConfig_MissingReportURL(t *testing.T) {
	path := writeFile(t, "server.yaml", `addr: ":9090"`)

	_, err := LoadServerConfig(path)
	assert.ErrorContains(t, err, "report_url")
}
