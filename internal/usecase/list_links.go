package usecase

import (
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// ListLinks возвращает ссылки владельца, новые первыми
func (u *LinkUsecase) ListLinks(owner uuid.UUID) []model.Link {
	return u.repo.GetLinksByOwner(owner)
}

// GetLinkStats возвращает публичную статистику ссылки без изменения счётчиков
func (u *LinkUsecase) GetLinkStats(code model.Code) (model.LinkStats, error) {
	link, err := u.repo.GetLink(code)
	if err != nil {
		return model.LinkStats{}, fmt.Errorf("%w: %w", ErrLinkNotFound, err)
	}

	return model.NewLinkStats(link), nil
}
