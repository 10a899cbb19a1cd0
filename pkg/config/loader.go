package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/minifsm/pkg/logger"
)

// Config holds the settings of the fsmrun command.
type Config struct {
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	ServiceName    string `env:"FSM_SERVICE_NAME" envDefault:"fsmrun"`
	LogLevel       string `env:"FSM_LOG_LEVEL"`
	LogFormat      string `env:"FSM_LOG_FORMAT"`
	DefinitionPath string `env:"FSM_DEFINITION" envDefault:"machine.yaml"`
	Strict         bool   `env:"FSM_STRICT" envDefault:"true"`
}

// LoadEnv loads the given .env files into the process environment.
// Variables already set are not overridden. With no files, the default
// .env in the working directory is loaded if it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		// the default file is optional
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Parse populates v from the environment using its `env` field tags.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load reads the .env files, parses Config and validates it.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//		// Handle error
//	}
//	log := logger.New(cfg.LoggerOptions(os.Stderr)...)
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks values the env tags cannot constrain.
func (c Config) Validate() error {
	if c.DefinitionPath == "" {
		return fmt.Errorf("%w: FSM_DEFINITION is empty", ErrInvalidConfig)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	if c.LogFormat != "" {
		if _, err := logger.ParseFormat(c.LogFormat); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}

// LoggerOptions translates the logging settings into logger options:
// the environment preset first, then explicit level and format overrides.
func (c Config) LoggerOptions(out io.Writer) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(c.AppEnv, c.ServiceName),
		logger.WithOutput(out),
	}
	if lvl, err := logger.ParseLevel(c.LogLevel); c.LogLevel != "" && err == nil {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if f, err := logger.ParseFormat(c.LogFormat); c.LogFormat != "" && err == nil {
		opts = append(opts, logger.WithFormat(f))
	}
	return opts
}

// LogValue keeps config dumps in log records compact.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.AppEnv),
		slog.String("definition", c.DefinitionPath),
		slog.Bool("strict", c.Strict),
	)
}
