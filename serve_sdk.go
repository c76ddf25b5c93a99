package vgacons

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pkt.systems/pslog"

	"pkt.systems/vgacons/internal/server"
)

// ServeOptions configures the inspection server run.
type ServeOptions struct {
	Config Config
	Logger pslog.Logger
}

// Serve binds the console, prints the boot banner, and serves the
// read-only inspection endpoints until the context is canceled.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	fb, err := bindConsole(opts.Config.Console)
	if err != nil {
		return err
	}
	defer fb.Close()

	printBanner()

	listen := opts.Config.Serve.Listen
	if listen == "" {
		listen = DefaultListenAddr
	}

	handler := server.AccessLog(logger.With("component", "access"),
		server.NewHandler(TakeSnapshot, logger.With("component", "screen")))
	srv := server.New(server.Config{
		ListenAddr:        listen,
		Logger:            logger.With("component", "http"),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}, handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("inspection server listening", "addr", listen)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
