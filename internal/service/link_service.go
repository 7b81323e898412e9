package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
)

// MaxAttempts ограничивает число пересчётов кода со свежей солью
const MaxAttempts = 1000

// LinkService содержит бизнес-логику создания коротких ссылок
type LinkService struct {
	repo          LinkRepository
	codeGenerator Generator
	cfg           *config.Config
	nowFunc       func() time.Time
	saltFunc      func() string
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo LinkRepository, cfg *config.Config) *LinkService {
	return &LinkService{
		repo:          repo,
		codeGenerator: NewHashGenerator(),
		cfg:           cfg,
		nowFunc:       time.Now,
		saltFunc:      uuid.NewString,
	}
}

// CreateLink создает ссылку владельца на target.
// limit == nil означает лимит по умолчанию, отрицательный лимит превращается в 0 (без лимита);
// ttl == nil означает TTL по умолчанию.
// Код подбирается не более MaxAttempts раз, после чего возвращается ErrMaxRetriesExceeded.
func (s *LinkService) CreateLink(owner uuid.UUID, target string, limit *int, ttl *time.Duration) (model.Link, error) {
	maxClicks := s.cfg.DefaultMaxClicks
	if limit != nil {
		maxClicks = *limit
	}
	maxClicks = max(0, maxClicks)

	lifetime := s.cfg.DefaultTTL
	if ttl != nil {
		lifetime = *ttl
	}

	now := s.nowFunc()
	link := model.Link{
		Owner:     owner,
		Target:    target,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
		MaxClicks: maxClicks,
		Clicks:    0,
		Active:    true,
	}

	code, err := s.insertWithUniqueCode(link)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to generate unique code: %w", err)
	}
	link.ID = code

	return link, nil
}

// insertWithUniqueCode сначала пробует детерминированный код с солью по умолчанию
// (строка владельца), а при коллизии пересчитывает код со случайной солью
func (s *LinkService) insertWithUniqueCode(link model.Link) (model.Code, error) {
	salt := link.Owner.String()

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if attempt > 0 {
			salt = s.saltFunc()
		}

		code := s.codeGenerator.GenerateCode(link.Owner, link.Target, salt)

		if !s.repo.IsCodeUnique(code) {
			continue
		}

		link.ID = code
		err := s.repo.CreateLink(link)
		if err == nil {
			return code, nil
		}
		// код заняли между проверкой и вставкой
		if !errors.Is(err, store.ErrAlreadyExists) {
			return "", err
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", MaxAttempts, ErrMaxRetriesExceeded)
}
