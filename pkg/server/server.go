// Package server exposes the GraphQL schema over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/botobag/artemis/graphql/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kerbaras/animes/pkg/config"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/graph"
)

type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	router chi.Router
}

// New builds the HTTP routes for a schema over store.
func New(cfg *config.Config, store data.Store, logger *slog.Logger) (*Server, error) {
	schema, err := graph.NewSchema(store)
	if err != nil {
		return nil, err
	}

	gql, err := handler.New(schema,
		handler.OverrideRequestBuilder(newRequestBuilder(cfg.MaxBodySize)),
		handler.OverrideErrorPresenter(errorPresenter{logger: logger}),
		handler.OverrideResultPresenter(resultPresenter{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create graphql handler: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	s.router.Use(requestLogger(logger))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", healthz)
	s.router.Post("/graphql", gql.ServeHTTP)
	if cfg.GraphiQL {
		s.router.Get("/graphql", withGraphiQL(gql))
	} else {
		s.router.Get("/graphql", gql.ServeHTTP)
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String(), "graphiql", s.cfg.GraphiQL)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
