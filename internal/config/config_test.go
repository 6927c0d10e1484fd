package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
  "credentials": {"email": "resident@example.com", "password": "hunter2"},
  "defaults": {"signature": "A. Resident", "bufferMinutes": 15, "headless": true, "timeout": 30, "bookInAdvanceDays": 10},
  "facilities": {
    "tennis_lower": {"spaceId": "1244466", "name": "Lower Tennis Court"},
    "squash": {"spaceId": "1244470", "name": "Squash Court"}
  },
  "urls": {"baseUrl": "https://parkhurst.skedda.com/booking", "loginUrl": "https://parkhurst.skedda.com/login"}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("SKEDDA_EMAIL", "")
	t.Setenv("SKEDDA_PASSWORD", "")
	t.Setenv("SKEDDA_SIGNATURE", "")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Equal(t, "resident@example.com", cfg.Credentials.Email)
	require.Equal(t, 10, cfg.Defaults.BookInAdvanceDays)
	require.Equal(t, []string{"squash", "tennis_lower"}, cfg.FacilityKeys())

	f, err := cfg.Facility("tennis_lower")
	require.NoError(t, err)
	require.Equal(t, "1244466", f.SpaceID)

	_, err = cfg.Facility("bowling")
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKEDDA_EMAIL", "other@example.com")
	t.Setenv("SKEDDA_PASSWORD", "s3cret")
	t.Setenv("SKEDDA_SIGNATURE", "B. Resident")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "other@example.com", cfg.Credentials.Email)
	require.Equal(t, "s3cret", cfg.Credentials.Password)
	require.Equal(t, "B. Resident", cfg.Defaults.Signature)
}

func TestLoadDefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{
	  "facilities": {"gym": {"spaceId": "1", "name": "Gym"}},
	  "urls": {"baseUrl": "https://example.skedda.com/booking"}
	}`))
	require.NoError(t, err)
	require.Equal(t, 15, cfg.Defaults.BufferMinutes)
	require.Equal(t, 30, cfg.Defaults.TimeoutSeconds)
	require.Equal(t, cfg.URLs.BaseURL, cfg.URLs.LoginURL)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"credentials":`},
		{"missing base url", `{"facilities": {"gym": {"spaceId": "1"}}}`},
		{"no facilities", `{"urls": {"baseUrl": "https://x.skedda.com/booking"}}`},
		{"facility without space id", `{"urls": {"baseUrl": "https://x.skedda.com/booking"}, "facilities": {"gym": {"name": "Gym"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
