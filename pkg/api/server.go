package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/dmitrymomot/valuecheck/pkg/clientip"
	"github.com/dmitrymomot/valuecheck/pkg/httpserver"
	"github.com/dmitrymomot/valuecheck/pkg/logger"
	"github.com/dmitrymomot/valuecheck/pkg/requestid"
	"github.com/dmitrymomot/valuecheck/pkg/validator"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics replaces the metrics the server reports to.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRateLimit limits /v1 requests to limit per window for each client IP.
// A non-positive limit disables rate limiting.
func WithRateLimit(limit int, window time.Duration) Option {
	return func(s *Server) {
		s.rateLimit = limit
		s.rateWindow = window
	}
}

// WithTrustProxy makes the rate limiter key clients by forwarding headers
// instead of the connection address.
func WithTrustProxy(trust bool) Option {
	return func(s *Server) { s.trustProxy = trust }
}

// Server routes HTTP requests to a validator.
type Server struct {
	validator  *validator.Validator
	log        *slog.Logger
	metrics    *Metrics
	rateLimit  int
	rateWindow time.Duration
	trustProxy bool
	router     chi.Router
}

var _ http.Handler = (*Server)(nil)

// New returns a Server backed by v, or by the default validator when v is nil.
func New(v *validator.Validator, opts ...Option) *Server {
	if v == nil {
		v = validator.Default()
	}
	s := &Server{
		validator:  v,
		log:        logger.Discard(),
		rateWindow: time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.rateWindow <= 0 {
		s.rateWindow = time.Minute
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics returns the collectors the server reports to.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(s.logRequests)

	r.Get("/health", httpserver.HealthCheckHandler(s.log))
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		if s.rateLimit > 0 {
			r.Use(httprate.Limit(s.rateLimit, s.rateWindow,
				httprate.WithKeyFuncs(clientip.KeyFunc(s.trustProxy)),
				httprate.WithLimitHandler(s.rateLimited),
			))
		}
		r.Post("/validate", s.handleValidate)
		r.Get("/rules", s.handleRules)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusNotFound, "not_found", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})
	return r
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValidateRequest(w, r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}
	if problems, err := checkRequest(req); err != nil {
		s.fail(w, r, http.StatusBadRequest, CodeInvalidRequest, err.Error(), problems)
		return
	}

	failures, err := s.validator.Validate(req.Rules, req.Value)
	s.metrics.observe(failures, err)
	if err != nil {
		if validator.IsConfigurationError(err) {
			attrs := []any{logger.Rules(req.Rules), logger.Error(err)}
			var ruleErr *validator.RuleError
			if errors.As(err, &ruleErr) {
				attrs = append(attrs, logger.Rule(ruleErr.Rule))
			}
			s.log.WarnContext(r.Context(), "rejected rule list", attrs...)
			s.fail(w, r, http.StatusUnprocessableEntity, CodeInvalidRule, err.Error(), nil)
			return
		}
		s.log.ErrorContext(r.Context(), "validation failed unexpectedly", logger.Error(err))
		s.fail(w, r, http.StatusInternalServerError, CodeInternal, "internal error", nil)
		return
	}

	resp := ValidateResponse{Valid: failures.IsEmpty(), Errors: make([]validationResult, 0, len(failures))}
	for _, f := range failures {
		resp.Errors = append(resp.Errors, validationResult{Rule: f.Rule, Message: f.Message})
	}
	s.log.DebugContext(r.Context(), "value validated",
		logger.Rules(req.Rules),
		logger.Failures(len(failures)),
		logger.ValueLength(valueLength(req.Value)),
	)
	s.respond(w, r, resp)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.validator.Rules())
}

func (s *Server) rateLimited(w http.ResponseWriter, r *http.Request) {
	s.fail(w, r, http.StatusTooManyRequests, CodeRateLimited, "too many requests", nil)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.LogAttrs(r.Context(), level, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

func valueLength(v any) int {
	if v == nil {
		return 0
	}
	return utf8.RuneCountInString(fmt.Sprint(v))
}
