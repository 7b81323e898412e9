package usecase

import (
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestUsecase собирает usecase поверх настоящего хранилища с фиксированным временем
func newTestUsecase(t *testing.T) (*LinkUsecase, *store.Store, *mocks.MockOpener) {
	t.Helper()

	st := store.NewStore()
	repo := repository.New(st)
	cfg := config.NewDefaultConfig()
	opener := mocks.NewMockOpener(t)

	usecase := NewLinkUsecase(repo, service.NewLinkService(repo, cfg), opener, cfg, zap.NewNop())
	usecase.nowFunc = func() time.Time { return testNow }

	return usecase, st, opener
}

// seedLink кладет в хранилище активную ссылку, созданную час назад и живущую ещё час
func seedLink(st *store.Store, id model.Code, owner uuid.UUID, mutate func(model.Link) model.Link) model.Link {
	link := model.Link{
		ID:        id,
		Owner:     owner,
		Target:    "https://example.com/" + id.String(),
		CreatedAt: testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(time.Hour),
		MaxClicks: 0,
		Clicks:    0,
		Active:    true,
	}
	if mutate != nil {
		link = mutate(link)
	}
	st.Upsert(link)
	return link
}
