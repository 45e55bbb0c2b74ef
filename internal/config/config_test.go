package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New(nil)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TRAIN_DATA_DIR", "/var/lib/trains")
	t.Setenv("TRAIN_LOG_LEVEL", "debug")
	t.Setenv("TRAIN_LOG_DEVELOPMENT", "true")

	v, err := New(nil)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/trains", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TRAIN_DATA_DIR", "/from/env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", DefaultDataDir, "")
	fs.String("metrics-file", "", "")
	require.NoError(t, fs.Parse([]string{"--data-dir", "/from/flag", "--metrics-file", "m.prom"}))

	v, err := New(fs)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.DataDir)
	assert.Equal(t, "m.prom", cfg.MetricsFile)
}

func TestUnsetFlagFallsBackToEnv(t *testing.T) {
	t.Setenv("TRAIN_DATA_DIR", "/from/env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", DefaultDataDir, "")
	require.NoError(t, fs.Parse(nil))

	v, err := New(fs)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{DataDir: "", LogLevel: "info"}.Validate())
	assert.Error(t, Config{DataDir: "d", LogLevel: "loud"}.Validate())
	assert.NoError(t, Config{DataDir: "d", LogLevel: "WARN"}.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, loaded)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRAIN_METRICS_FILE=from-dotenv.prom\n"), 0o600))
	t.Setenv("TRAIN_METRICS_FILE", "")
	require.NoError(t, os.Unsetenv("TRAIN_METRICS_FILE"))

	loaded, err = LoadDotEnv(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "from-dotenv.prom", Get(KeyMetricsFile, "none"))
}
