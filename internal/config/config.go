package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TRAIN"

	KeyDataDir        = "data_dir"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
	KeyLogDevelopment = "log_development"
	KeyMetricsFile    = "metrics_file"

	DefaultDataDir  = "data/trains"
	DefaultLogLevel = "info"
)

// Config is the resolved runtime configuration. Precedence, highest first:
// command-line flags, TRAIN_* environment variables (a .env file in the
// working directory is loaded into the environment first), defaults.
type Config struct {
	DataDir        string
	LogLevel       string
	LogFile        string
	LogDevelopment bool
	MetricsFile    string
}

// Validate checks for invalid configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug|info|warn|error, got %q", c.LogLevel)
	}
	return nil
}

// LoadDotEnv loads .env files into the process environment. A missing file
// is not an error; it reports whether anything was loaded.
func LoadDotEnv(paths ...string) (bool, error) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load .env: %w", err)
	}
	return true, nil
}

// New returns a viper instance with defaults and environment binding. When
// flags is non-nil its flags are bound under their own names with dashes
// turned into underscores (--data-dir -> data_dir).
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, DefaultDataDir)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyMetricsFile, "")

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				bindErr = fmt.Errorf("bind flag --%s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	return v, nil
}

// Load resolves Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DataDir:        v.GetString(KeyDataDir),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFile:        v.GetString(KeyLogFile),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
		MetricsFile:    v.GetString(KeyMetricsFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Get returns the named TRAIN_* setting or fallback, for entry points that do
// not build a full Config.
func Get(key, fallback string) string {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if s := v.GetString(key); s != "" {
		return s
	}
	return fallback
}
