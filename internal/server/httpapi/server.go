// Package httpapi exposes the identity service over HTTP and gates protected
// handlers behind bearer-token verification.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	codec   *auth.Codec
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger, us *users.Service, codec *auth.Codec) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		codec:   codec,
	}
}

// Handler builds the route table. Split out from Run so tests can drive the
// full stack through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/user/register", s.handleRegister)
	mux.HandleFunc("POST /api/user/login", s.handleLogin)
	mux.Handle("GET /api/user/me", s.requireToken(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("GET /api/ping", s.handlePing)

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
