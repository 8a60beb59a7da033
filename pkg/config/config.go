package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/uakit/pkg/logger"
)

// Prefix is prepended to every environment variable read by this package.
const Prefix = "UAKIT_"

// Config holds the settings needed to assemble a user agent accessor.
type Config struct {
	// Decomposer names the decomposition engine: keyword, uasurfer or mssola.
	Decomposer string `env:"DECOMPOSER" envDefault:"keyword"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"uakit"`
}

var defaultEnvLoaded sync.Once

// Load reads the process environment into a Config.
// The default .env file is loaded once, if present; existing variables win.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses vars instead of the process environment.
// Keys must carry the UAKIT_ prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the logging settings. The decomposer name is resolved
// later by the decomposer package, which owns the list of engines.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return errors.Join(ErrInvalidConfig, ErrInvalidLogFormat)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() slog.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// Logger builds a logger from the environment defaults, then applies the
// explicit level and format on top.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithEnvironment(c.Environment, c.ServiceName),
		logger.WithLevel(c.Level()),
	}
	if f := logger.Format(c.LogFormat); f == logger.FormatJSON || f == logger.FormatText {
		base = append(base, logger.WithFormat(f))
	}
	return logger.New(append(base, opts...)...)
}
