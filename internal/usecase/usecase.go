package usecase

import (
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkService
//go:generate mockery --name Opener

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	GetLink(code model.Code) (model.Link, error)
	UpdateLink(code model.Code, fn store.UpdateFunc)
	GetLinksByOwner(owner uuid.UUID) []model.Link
}

// LinkService определяет интерфейс сервиса создания ссылок
type LinkService interface {
	CreateLink(owner uuid.UUID, target string, limit *int, ttl *time.Duration) (model.Link, error)
}

// Opener выполняет локальное действие открытия ссылки, например запуск браузера
type Opener interface {
	Open(target string) error
}

// LinkUsecase содержит бизнес-логику жизненного цикла ссылок
type LinkUsecase struct {
	repo    LinkRepository
	service LinkService
	opener  Opener
	cfg     *config.Config
	logger  *zap.Logger
	nowFunc func() time.Time
}

// NewLinkUsecase создает новый экземпляр LinkUsecase.
// opener может быть nil, тогда успешное открытие только засчитывает клик.
func NewLinkUsecase(repo LinkRepository, service LinkService, opener Opener, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:    repo,
		service: service,
		opener:  opener,
		cfg:     cfg,
		logger:  logger,
		nowFunc: time.Now,
	}
}
