package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/config"
	"github.com/dmitrymomot/uakit/pkg/logger"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Decomposer:  "keyword",
		LogLevel:    "info",
		LogFormat:   "json",
		Environment: "development",
		ServiceName: "uakit",
	}, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"UAKIT_DECOMPOSER":   "uasurfer",
		"UAKIT_LOG_LEVEL":    "debug",
		"UAKIT_LOG_FORMAT":   "text",
		"UAKIT_APP_ENV":      "production",
		"UAKIT_SERVICE_NAME": "storefront",
		"DECOMPOSER":         "ignored-without-prefix",
	})
	require.NoError(t, err)
	assert.Equal(t, "uasurfer", cfg.Decomposer)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "storefront", cfg.ServiceName)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		err  error
	}{
		{"bad level", map[string]string{"UAKIT_LOG_LEVEL": "loud"}, logger.ErrInvalidLevel},
		{"bad format", map[string]string{"UAKIT_LOG_FORMAT": "xml"}, config.ErrInvalidLogFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadFrom(tc.vars)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("UAKIT_DECOMPOSER", "mssola")
	t.Setenv("UAKIT_LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mssola", cfg.Decomposer)
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoadEnv(t *testing.T) {
	// t.Setenv registers a cleanup that restores the original state after
	// the file has written into the process environment.
	t.Setenv("UAKIT_DECOMPOSER", "")
	t.Setenv("UAKIT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("UAKIT_DECOMPOSER"))
	require.NoError(t, os.Unsetenv("UAKIT_LOG_LEVEL"))
	t.Setenv("UAKIT_SERVICE_NAME", "preset")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mssola", cfg.Decomposer)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.Equal(t, "preset", cfg.ServiceName, "existing variables must win over the file")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestConfig_Logger(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"UAKIT_APP_ENV":      "production",
		"UAKIT_SERVICE_NAME": "storefront",
		"UAKIT_LOG_LEVEL":    "warn",
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	log := cfg.Logger(logger.WithOutput(buf))
	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "production", entry["env"])
}
