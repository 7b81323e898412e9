package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/identity"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет приложение коротких ссылок
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
}

// New создает новый экземпляр приложения, читающий команды из stdin
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app, err := newApp(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

func newApp(cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (*App, error) {
	deps, err := initDependencies(cfg, identity.NewFileProvider(cfg.UserIDFile), logger, in, out)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
	}, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Run запускает приложение и ждёт exit, конца ввода или сигнала завершения
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.run(ctx)
}

// run запускает HTTP сервер, очистку и цикл команд.
// Завершение цикла команд останавливает остальные компоненты.
func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.serveHTTP(gctx)
	})
	g.Go(func() error {
		return a.deps.sweeper.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return a.deps.shell.Run(gctx)
	})

	return g.Wait()
}

// Close останавливает очистку и сбрасывает буферы логгера
func (a *App) Close() {
	if a.deps != nil && a.deps.sweeper != nil {
		a.deps.sweeper.Stop()
	}
	_ = a.logger.Sync()
}
