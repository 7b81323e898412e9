package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenLink_NotFound(t *testing.T) {
	// Arrange
	usecase, st, opener := newTestUsecase(t)
	seedLink(st, "other001", uuid.New(), nil)
	before := st.ListAll()

	// Act
	result := usecase.OpenLink("missing1")

	// Assert
	assert.Equal(t, model.OpenNotFound, result)
	assert.Equal(t, before, st.ListAll())
	assert.False(t, st.Exists("missing1"))
	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestOpenLink_Success(t *testing.T) {
	// Arrange
	usecase, st, opener := newTestUsecase(t)
	link := seedLink(st, "abc12345", uuid.New(), func(l model.Link) model.Link {
		return l.WithMaxClicks(3).WithClicks(1)
	})

	opener.EXPECT().Open(link.Target).Return(nil).Once()

	// Act
	result := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenOK, result)
	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Clicks)
	assert.True(t, stored.Active)
}

func TestOpenLink_OpenerFailureKeepsClick(t *testing.T) {
	// Arrange
	usecase, st, opener := newTestUsecase(t)
	link := seedLink(st, "abc12345", uuid.New(), nil)

	opener.EXPECT().Open(link.Target).Return(errors.New("no display")).Once()

	// Act
	result := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenOK, result)
	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Clicks)
}

func TestOpenLink_NilOpener(t *testing.T) {
	// Arrange
	st := store.NewStore()
	repo := repository.New(st)
	usecase := NewLinkUsecase(repo, nil, nil, config.NewDefaultConfig(), zap.NewNop())
	usecase.nowFunc = func() time.Time { return testNow }
	link := seedLink(st, "abc12345", uuid.New(), nil)

	// Act
	result := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenOK, result)
	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Clicks)
}

func TestOpenLink_LimitExceededThenInactive(t *testing.T) {
	// Arrange
	usecase, st, opener := newTestUsecase(t)
	link := seedLink(st, "limit001", uuid.New(), func(l model.Link) model.Link {
		return l.WithMaxClicks(3).WithClicks(3)
	})

	// Act
	first := usecase.OpenLink(link.ID)
	second := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenLimitExceeded, first)
	assert.Equal(t, model.OpenInactive, second)

	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, model.InactiveLimitReached, stored.InactiveReason)
	assert.Equal(t, 3, stored.Clicks)
	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestOpenLink_ExpiredIsDeflaggedNotDeleted(t *testing.T) {
	// Arrange
	usecase, st, opener := newTestUsecase(t)
	link := seedLink(st, "expired1", uuid.New(), func(l model.Link) model.Link {
		return l.WithExpiresAt(testNow.Add(-time.Minute))
	})

	// Act
	result := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenExpired, result)

	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, model.InactiveExpired, stored.InactiveReason)
	assert.Equal(t, link.Clicks, stored.Clicks)
	assert.Equal(t, model.OpenInactive, usecase.OpenLink(link.ID))
	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestOpenLink_Inactive(t *testing.T) {
	// Arrange
	usecase, st, _ := newTestUsecase(t)
	link := seedLink(st, "inactiv1", uuid.New(), func(l model.Link) model.Link {
		return l.WithActive(false)
	})

	// Act
	result := usecase.OpenLink(link.ID)

	// Assert
	assert.Equal(t, model.OpenInactive, result)
	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, link, stored)
}

func TestOpenLink_ConcurrentOpensRespectLimit(t *testing.T) {
	// Arrange
	const (
		limit   = 5
		openers = 50
	)

	usecase, st, opener := newTestUsecase(t)
	link := seedLink(st, "race0001", uuid.New(), func(l model.Link) model.Link {
		return l.WithMaxClicks(limit)
	})

	opener.EXPECT().Open(link.Target).Return(nil).Times(limit)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[model.OpenResult]int)
	)

	// Act
	for range openers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := usecase.OpenLink(link.ID)
			mu.Lock()
			results[result]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, limit, results[model.OpenOK])
	assert.Equal(t, openers-limit, results[model.OpenLimitExceeded]+results[model.OpenInactive])
	assert.Equal(t, 1, results[model.OpenLimitExceeded])

	stored, err := st.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, limit, stored.Clicks)
	assert.False(t, stored.Active)
}
