package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

const readHeaderTimeout = 10 * time.Second

// startHTTPServer binds the configured port, serves router and blocks until
// gfshutdown has drained the server and closed the database after SIGINT or
// SIGTERM. It returns the process exit code.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) int {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)

	// Bind synchronously so a taken port fails startup instead of hanging.
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		app.logger.Error("failed to listen", slog.String("addr", addr), slog.String("error", err.Error()))
		_ = app.cleanup()
		return 1
	}

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		app.logger.Info("starting server", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("server failed", slog.String("error", err.Error()))
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, app.config.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				app.logger.Info("shutting down server")
				shutdownErr := server.Shutdown(ctx)
				if shutdownErr != nil {
					app.logger.Error("server shutdown failed", slog.String("error", shutdownErr.Error()))
				}
				// Close the pool only after in-flight requests have drained.
				return errors.Join(shutdownErr, app.cleanup())
			},
		})

	exitCode := <-wait
	app.logger.Info("server shutdown completed", slog.Int("exit_code", exitCode))
	return exitCode
}
