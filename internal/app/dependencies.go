package app

import (
	"fmt"
	"io"

	"github.com/avc-dev/shortlinks/internal/cli"
	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/identity"
	"github.com/avc-dev/shortlinks/internal/notifier"
	"github.com/avc-dev/shortlinks/internal/opener"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/avc-dev/shortlinks/internal/sweeper"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dependencies компоненты приложения, разделяющие одно хранилище
type dependencies struct {
	owner   uuid.UUID
	store   *store.Store
	usecase *usecase.LinkUsecase
	handler *handler.Handler
	sweeper *sweeper.Sweeper
	shell   *cli.Shell
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, ids identity.Provider, logger *zap.Logger, in io.Reader, out io.Writer) (*dependencies, error) {
	owner, err := ids.OwnerID()
	if err != nil {
		return nil, fmt.Errorf("failed to load user identifier: %w", err)
	}
	logger.Info("Using user identifier",
		zap.String("owner", owner.String()),
		zap.String("path", cfg.UserIDFile),
	)

	st := store.NewStore()
	repo := repository.New(st)
	linkService := service.NewLinkService(repo, cfg)
	linkUsecase := usecase.NewLinkUsecase(repo, linkService, opener.NewBrowser(out), cfg, logger)

	notify := notifier.Combine(notifier.NewConsole(out), notifier.NewLog(logger))
	linkSweeper := sweeper.New(repo, notify, sweeper.Config{
		InitialDelay: cfg.Sweep.InitialDelay,
		Period:       cfg.Sweep.Period,
	}, logger)

	return &dependencies{
		owner:   owner,
		store:   st,
		usecase: linkUsecase,
		handler: handler.New(linkUsecase, logger),
		sweeper: linkSweeper,
		shell:   cli.New(linkUsecase, owner, in, out, logger),
	}, nil
}
