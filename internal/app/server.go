package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// serveHTTP запускает HTTP сервер редиректов и останавливает его при отмене ctx.
// Ошибка привязки к адресу отключает только HTTP, остальное приложение продолжает работу.
func (a *App) serveHTTP(ctx context.Context) error {
	addr := a.config.ServerAddress.String()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		a.logger.Error("HTTP redirect server disabled: failed to bind",
			zap.String("address", addr),
			zap.Error(err),
		)
		return nil
	}

	return a.serve(ctx, listener)
}

func (a *App) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           newRouter(a.deps.handler, a.logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("HTTP server shutdown incomplete", zap.Error(err))
		}
	}()

	a.logger.Info("Starting HTTP redirect server",
		zap.String("address", listener.Addr().String()),
		zap.String("base_url", a.config.BaseURL.String()),
	)

	err := server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-shutdownDone
	a.logger.Info("HTTP redirect server stopped")

	return nil
}
