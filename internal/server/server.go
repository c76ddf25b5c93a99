// Package server exposes the console grid to external verifiers over HTTP.
// Everything it serves is read-only: the handler takes snapshots and never
// holds a writer.
package server

import (
	"context"
	"net/http"
	"time"

	"pkt.systems/pslog"
)

// Config configures the inspection HTTP server.
type Config struct {
	ListenAddr string
	Logger     pslog.Logger

	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// Server abstracts the HTTP server lifecycle.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type stdServer struct {
	srv *http.Server
}

// New constructs a Server using the provided handler.
func New(cfg Config, handler http.Handler) Server {
	logger := cfg.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	return &stdServer{
		srv: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ErrorLog:          pslog.LogLogger(logger),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			// No ReadTimeout/WriteTimeout: the live feed holds its
			// connection open.
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
		},
	}
}

func (s *stdServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *stdServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
