package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("USERERROR_COLOR", "")
	t.Setenv("USERERROR_LOG_LEVEL", "")
	t.Setenv("USERERROR_LOG_FORMAT", "")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "usererror.yaml", `
color: Never
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ColorNever, cfg.Color)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "usererror.yaml", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "usererror.yaml", "color: never\n")

	t.Setenv("USERERROR_COLOR", "always")
	t.Setenv("USERERROR_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ColorAlways, cfg.Color)
	require.Equal(t, LogLevelWarn, cfg.Logging.Level)
}

func TestLoad_ExpandsVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_USERERROR_MODE", "never")
	path := writeFile(t, t.TempDir(), "usererror.yaml", "color: ${TEST_USERERROR_MODE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown color", "color: rainbow\n", "invalid color mode"},
		{"unknown level", "logging:\n  level: loud\n", "invalid log level"},
		{"unknown key", "colour: never\n", "failed to parse config file"},
		{"malformed yaml", "color: [never\n", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "usererror.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_USERERROR_FROM_ENV", "")
	t.Setenv("TEST_USERERROR_PRESET", "process")

	require.Error(t, loadEnvFiles(dir))

	writeFile(t, dir, ".env.local", "TEST_USERERROR_FROM_ENV=local\nTEST_USERERROR_PRESET=file\n")
	require.NoError(t, os.Unsetenv("TEST_USERERROR_FROM_ENV"))

	require.NoError(t, loadEnvFiles(dir))
	require.Equal(t, "local", os.Getenv("TEST_USERERROR_FROM_ENV"))
	require.Equal(t, "process", os.Getenv("TEST_USERERROR_PRESET"))
}

func TestLoadEnvFiles_FirstFileWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_USERERROR_FROM_ENV", "")
	t.Setenv("TEST_USERERROR_LOCAL_ONLY", "")
	require.NoError(t, os.Unsetenv("TEST_USERERROR_FROM_ENV"))
	require.NoError(t, os.Unsetenv("TEST_USERERROR_LOCAL_ONLY"))

	writeFile(t, dir, ".env", "TEST_USERERROR_FROM_ENV=dotenv\n")
	writeFile(t, dir, ".env.local", "TEST_USERERROR_FROM_ENV=local\nTEST_USERERROR_LOCAL_ONLY=yes\n")

	require.NoError(t, loadEnvFiles(dir))
	require.Equal(t, "dotenv", os.Getenv("TEST_USERERROR_FROM_ENV"))
	_, ok := os.LookupEnv("TEST_USERERROR_LOCAL_ONLY")
	require.False(t, ok)
}

func TestInit(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "usererror.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}

func TestModes(t *testing.T) {
	require.Equal(t, ColorAlways, NormalizeColorMode(" ALWAYS "))
	require.Equal(t, ColorAuto, NormalizeColorMode("bogus"))
	require.Equal(t, slog.LevelDebug, LogLevelDebug.SlogLevel())
	require.Equal(t, slog.LevelWarn, LogLevelWarn.SlogLevel())
	require.Equal(t, slog.LevelError, LogLevelError.SlogLevel())
	require.Equal(t, slog.LevelInfo, LogLevel("").SlogLevel())
}
