// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUID, stores the ID in the request context and echoes it in the
// response. FromContext reads it back, and LoggerExtractor adds it to slog
// records as "request_id" when used with logger.WithContextExtractors:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
