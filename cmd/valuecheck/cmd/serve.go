package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuecheck/pkg/api"
	"github.com/dmitrymomot/valuecheck/pkg/config"
	"github.com/dmitrymomot/valuecheck/pkg/httpserver"
	"github.com/dmitrymomot/valuecheck/pkg/logger"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadAppConfig(flags)
			if err != nil {
				return err
			}
			var httpCfg httpserver.Config
			if err := config.Load(&httpCfg); err != nil {
				return configError(err)
			}
			if addr != "" {
				httpCfg.Addr = addr
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			v, err := newValidator(cfg)
			if err != nil {
				return err
			}

			handler := api.New(v,
				api.WithLogger(log.With(logger.Component("api"))),
				api.WithRateLimit(cfg.RateLimit, cfg.RateWindow),
				api.WithTrustProxy(cfg.TrustProxy),
			)
			srv := httpserver.NewFromConfig(httpCfg,
				httpserver.WithLogger(log.With(logger.Component("httpserver"))),
			)

			log.InfoContext(cmd.Context(), "starting valuecheck",
				"version", Version,
				"rules", len(v.Rules()),
				"rate_limit", cfg.RateLimit,
			)
			return srv.Run(cmd.Context(), handler)
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return c
}
