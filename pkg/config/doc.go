// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags) and caches each configuration
// type, so every package can call Load for its own struct without parsing the
// environment more than once.
//
// # Usage
//
//	type ServiceConfig struct {
//		Env          string `env:"APP_ENV" envDefault:"development"`
//		MessagesFile string `env:"VALUECHECK_MESSAGES_FILE"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The default .env in the working directory is read once, before the first
// Load; a missing file is not an error. LoadEnv reads explicit files instead.
// ResetCache drops cached values, which tests use to reload with new variables.
package config
