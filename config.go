package formkit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Config holds the environment-driven engine settings.
type Config struct {
	ErrorClass      string `env:"FORMKIT_ERROR_CLASS" envDefault:"form-validation-error"`
	ErrorStateClass string `env:"FORMKIT_ERROR_STATE_CLASS" envDefault:"has-error"`
	RulesAttr       string `env:"FORMKIT_RULES_ATTR" envDefault:"data-rules"`
	Language        string `env:"FORMKIT_LANGUAGE" envDefault:"en"`
	RuleCacheSize   int    `env:"FORMKIT_RULE_CACHE_SIZE" envDefault:"128"`
	LogLevel        string `env:"FORMKIT_LOG_LEVEL"`
	LogFormat       string `env:"FORMKIT_LOG_FORMAT" envDefault:"json"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ErrorClass:      "form-validation-error",
		ErrorStateClass: "has-error",
		RulesAttr:       "data-rules",
		Language:        "en",
		RuleCacheSize:   128,
		LogFormat:       "json",
	}
}

// LoadConfig reads Config from the environment, and from a .env file when
// present.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RulesAttr == "" {
		return errors.Join(ErrInvalidConfig, errors.New("rules attribute must not be empty"))
	}
	if c.RuleCacheSize <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("rule cache size must be positive"))
	}
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		switch logger.Format(c.LogFormat) {
		case logger.FormatJSON, logger.FormatText:
		default:
			return errors.Join(ErrInvalidConfig, fmt.Errorf("unknown log format %q", c.LogFormat))
		}
	}
	return nil
}

// newLogger builds the logger configured by FORMKIT_LOG_LEVEL, or a
// discarding one when the level is empty.
func (c Config) newLogger() *slog.Logger {
	if c.LogLevel == "" {
		return logger.Nop()
	}
	return logger.New(
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithAttr(logger.Component("formkit")),
	)
}
