package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/valuecheck/pkg/config"
	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
	"github.com/dmitrymomot/valuecheck/pkg/environment"
	"github.com/dmitrymomot/valuecheck/pkg/logger"
	"github.com/dmitrymomot/valuecheck/pkg/requestid"
	"github.com/dmitrymomot/valuecheck/pkg/validator"
)

// appConfig is the environment driven configuration shared by all commands.
type appConfig struct {
	AppName      string        `env:"APP_NAME" envDefault:"valuecheck"`
	Env          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel     string        `env:"LOG_LEVEL"`
	MessagesFile string        `env:"VALUECHECK_MESSAGES_FILE"`
	Timezone     string        `env:"VALUECHECK_TIMEZONE"`
	RateLimit    int           `env:"VALUECHECK_RATE_LIMIT" envDefault:"0"`
	RateWindow   time.Duration `env:"VALUECHECK_RATE_WINDOW" envDefault:"1m"`
	TrustProxy   bool          `env:"VALUECHECK_TRUST_PROXY" envDefault:"false"`
}

func loadAppConfig(flags *globalFlags) (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, configError(err)
	}
	if flags.messagesFile != "" {
		cfg.MessagesFile = flags.messagesFile
	}
	if flags.timezone != "" {
		cfg.Timezone = flags.timezone
	}
	return cfg, nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, configError(err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// newValidator applies the configured messages file and timezone.
func newValidator(cfg appConfig) (*validator.Validator, error) {
	var opts []validator.Option

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, configError(fmt.Errorf("timezone %q: %w", cfg.Timezone, err))
		}
		opts = append(opts, validator.WithDateNormalizer(datenorm.New(datenorm.WithLocation(loc))))
	}

	if cfg.MessagesFile != "" {
		msgs, err := readMessages(cfg.MessagesFile)
		if err != nil {
			return nil, configError(err)
		}
		opts = append(opts, validator.WithMessages(msgs))
	}

	v, err := validator.New(opts...)
	if err != nil {
		return nil, configError(err)
	}
	return v, nil
}

func readMessages(path string) (validator.Messages, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(validator.ErrInvalidMessages, err)
	}
	defer f.Close()
	return validator.LoadMessages(f)
}

func configError(err error) error {
	return &exitError{code: ExitConfig, err: err}
}
