package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/valuecheck/pkg/logger"
)

// Server is a single-use HTTP server with graceful shutdown.
type Server struct {
	opts options

	mu       sync.Mutex
	srv      *http.Server
	stopOnce sync.Once
	stopErr  error
}

// New returns a Server listening on :8080 unless configured otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		log:             logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.opts.addr }

// Run serves handler until ctx is done, a termination signal arrives or the
// listener fails. A nil handler serves 404 for every request.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:         s.opts.addr,
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	s.srv = srv
	s.mu.Unlock()

	for _, fn := range s.opts.onStart {
		fn(srv.Addr)
	}
	s.opts.log.InfoContext(ctx, "http server starting", "addr", srv.Addr)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ListenAndServe() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var err error
	select {
	case err = <-serveErr:
	case <-ctx.Done():
		err = s.stopAndWait(serveErr)
	case <-sig:
		err = s.stopAndWait(serveErr)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		if errors.Is(err, ErrShutdown) {
			return err
		}
		s.opts.log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return errors.Join(ErrStart, err)
	}
	s.opts.log.InfoContext(ctx, "http server stopped", "addr", srv.Addr)
	return nil
}

func (s *Server) stopAndWait(serveErr <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		<-serveErr
		return err
	}
	return <-serveErr
}

// Shutdown drains in-flight requests within the shutdown timeout. Calls after
// the first return the first result; calling it before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.stopErr = errors.Join(ErrShutdown, err)
		}
		for _, fn := range s.opts.onStop {
			fn()
		}
	})
	return s.stopErr
}
