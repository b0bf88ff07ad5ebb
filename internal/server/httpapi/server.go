// Package httpapi exposes the users API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/logging"
	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/dmitrijs2005/usersapi/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type UserLister interface {
	ListUsers(ctx context.Context, params models.ListUsersParams) (*models.UserListing, error)
}

type TokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

type Server struct {
	address string
	logger  logging.Logger
	users   UserLister
	tokens  TokenValidator
	origins []string
}

func NewServer(a string, l logging.Logger, us UserLister, ts TokenValidator, origins []string) *Server {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		tokens:  ts,
		origins: origins,
	}
}

// Handler returns the router with all middleware and routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", s.listUsers)

		r.Group(func(r chi.Router) {
			r.Use(s.authGate)
			r.Get("/me", s.me)
		})
	})

	return r
}

// Run serves until ctx is cancelled and then shuts the server down,
// letting in-flight requests finish.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped

	return nil
}
