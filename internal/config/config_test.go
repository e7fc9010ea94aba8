package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultClientURL, cfg.ClientURL)
	assert.Equal(t, DefaultFolderName, cfg.FolderName)
	assert.Equal(t, DefaultMetricsAddr, cfg.MetricsAddr)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LETTERDRIVE_ADDR", ":9999")
	t.Setenv("CLIENT_URL", "https://letters.example.com/")
	t.Setenv("LETTERS_FOLDER_NAME", "Correspondence")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "https://api.example.com/api/auth/google/callback")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	// Trailing slash is stripped so redirect URLs compose cleanly.
	assert.Equal(t, "https://letters.example.com", cfg.ClientURL)
	assert.Equal(t, "Correspondence", cfg.FolderName)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
	assert.False(t, cfg.MetricsEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "complete",
			cfg: Config{
				GoogleClientID:     "id",
				GoogleClientSecret: "secret",
				GoogleRedirectURL:  "https://api.example.com/callback",
			},
		},
		{
			name:    "missing client id",
			cfg:     Config{GoogleClientSecret: "secret", GoogleRedirectURL: "url"},
			wantErr: "GOOGLE_CLIENT_ID",
		},
		{
			name:    "missing client secret",
			cfg:     Config{GoogleClientID: "id", GoogleRedirectURL: "url"},
			wantErr: "GOOGLE_CLIENT_SECRET",
		},
		{
			name:    "missing redirect URL",
			cfg:     Config{GoogleClientID: "id", GoogleClientSecret: "secret"},
			wantErr: "GOOGLE_REDIRECT_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("LETTERDRIVE_TEST_BOOL", "yes")
	assert.True(t, getEnvBool("LETTERDRIVE_TEST_BOOL", false))

	t.Setenv("LETTERDRIVE_TEST_BOOL", "0")
	assert.False(t, getEnvBool("LETTERDRIVE_TEST_BOOL", true))

	t.Setenv("LETTERDRIVE_TEST_BOOL", "garbage")
	assert.True(t, getEnvBool("LETTERDRIVE_TEST_BOOL", true))
}
