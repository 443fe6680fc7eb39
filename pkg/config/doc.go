// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default `.env` file is loaded once, lazily (missing file is fine);
//   - Load parses the environment into any struct annotated with `env` tags and
//     caches the result per type, so repeated calls are cheap;
//   - Parse reads from an explicit map instead of the process environment and
//     bypasses the cache, which keeps tests hermetic;
//   - ResetCache drops every cached type.
//
// # Usage
//
//	type Config struct {
//		ErrorClass string `env:"FORMKIT_ERROR_CLASS" envDefault:"form-validation-error"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors are wrapped with errors.Join around ErrParsingConfig so callers can
// use errors.Is.
package config
