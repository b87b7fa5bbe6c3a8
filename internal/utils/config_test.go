package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeDotenv(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultMinLength, cfg.Policy.MinLength)
	assert.Equal(t, DefaultMaxLength, cfg.Policy.MaxLength)
	assert.True(t, cfg.Policy.RequireDigits)
	assert.True(t, cfg.Policy.RequireCapitals)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeDotenv(t, `PASSWORD_MIN_LENGTH=12
PASSWORD_MAX_LENGTH=64
PASSWORD_REQUIRE_DIGITS=false
PASSWORD_REQUIRE_CAPITALS=0
LOG_LEVEL=debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, &PolicyConfig{
		MinLength:       12,
		MaxLength:       64,
		RequireDigits:   false,
		RequireCapitals: false,
	}, cfg.Policy)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DoesNotRangeCheck(t *testing.T) {
	cfg, err := LoadConfig(writeDotenv(t, "PASSWORD_MIN_LENGTH=0\nPASSWORD_MAX_LENGTH=300\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Policy.MinLength)
	assert.Equal(t, 300, cfg.Policy.MaxLength)
}

func TestLoadConfig_EnvironmentFallback(t *testing.T) {
	t.Setenv("PASSWORD_MAX_LENGTH", "40")

	cfg, err := LoadConfig(writeDotenv(t, "PASSWORD_MIN_LENGTH=10\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Policy.MinLength)
	assert.Equal(t, 40, cfg.Policy.MaxLength)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"non-numeric min length", "PASSWORD_MIN_LENGTH=eight\n", "PASSWORD_MIN_LENGTH"},
		{"non-numeric max length", "PASSWORD_MAX_LENGTH=2.5\n", "PASSWORD_MAX_LENGTH"},
		{"bad digits flag", "PASSWORD_REQUIRE_DIGITS=sometimes\n", "PASSWORD_REQUIRE_DIGITS"},
		{"bad capitals flag", "PASSWORD_REQUIRE_CAPITALS=yes\n", "PASSWORD_REQUIRE_CAPITALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeDotenv(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfigValue)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
