// Package backend is a local stand-in for the hosted user-data functions.
// It serves fetch-user-data and save-user-data over a SQLite or PostgreSQL
// store so the client can be exercised without the hosted service.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server routes dev backend requests to a store
type Server struct {
	store  store.Store
	apiKey string
	log    *log.Logger
	router *mux.Router
}

// New builds a server over st
func New(st store.Store, cfg *Config) *Server {
	s := &Server{
		store:  st,
		apiKey: cfg.APIKey,
		log:    logger.Component("backend"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverer, s.instrument)

	fn := r.NewRoute().Subrouter()
	fn.Use(s.requireAuth)
	fn.HandleFunc(constants.FetchUserDataPath, s.handleFetch).Methods(http.MethodGet)
	fn.HandleFunc(constants.SaveUserDataPath, s.handleSave).Methods(http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run opens the configured store and serves until SIGINT/SIGTERM or ctx
// is cancelled
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open backend store: %w", err)
	}
	defer st.Close()

	s := New(st, cfg)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Backend listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down backend")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("backend forced to shut down: %w", err)
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("backend server failed: %w", err)
	}
}
