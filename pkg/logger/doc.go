// Package logger builds *slog.Logger instances for the valuecheck binaries
// and provides attribute helpers so validation events are logged with
// consistent keys.
//
// New creates a logger from functional options:
//
//   - WithEnvironment / WithDevelopment / WithProduction: per-environment defaults.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum level; ParseLevel converts configuration strings.
//   - WithAttr: static attributes on every record.
//   - WithContextExtractors: attributes pulled from context.Context on every
//     record, e.g. the request id set by the requestid middleware.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "valuecheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validated value",
//	    logger.Rules(rules),
//	    logger.Failures(len(errs)),
//	)
//
// Validated values are never logged; use ValueLength when the size matters.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
