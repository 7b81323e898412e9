package repository

import (
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
)

type Store interface {
	Exists(key model.Code) bool
	Get(key model.Code) (model.Link, error)
	Insert(link model.Link) error
	DeleteIf(key model.Code, pred func(model.Link) bool) (model.Link, bool)
	Update(key model.Code, fn store.UpdateFunc)
	ListByOwner(owner uuid.UUID) []model.Link
	ListAll() []model.Link
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// IsCodeUnique проверяет, свободен ли код
func (r Repository) IsCodeUnique(code model.Code) bool {
	return !r.underlying.Exists(code)
}

func (r Repository) CreateLink(link model.Link) error {
	if err := r.underlying.Insert(link); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

func (r Repository) GetLink(code model.Code) (model.Link, error) {
	link, err := r.underlying.Get(code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by code: %w", err)
	}

	return link, nil
}

func (r Repository) DeleteLinkIf(code model.Code, pred func(model.Link) bool) (model.Link, bool) {
	return r.underlying.DeleteIf(code, pred)
}

func (r Repository) UpdateLink(code model.Code, fn store.UpdateFunc) {
	r.underlying.Update(code, fn)
}

func (r Repository) GetLinksByOwner(owner uuid.UUID) []model.Link {
	return r.underlying.ListByOwner(owner)
}

func (r Repository) GetAllLinks() []model.Link {
	return r.underlying.ListAll()
}
