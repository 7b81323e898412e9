package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку владельца
func (u *LinkUsecase) DeleteLink(owner uuid.UUID, code model.Code) error {
	err := u.mutateOwned(owner, code, func(current model.Link) (model.Link, store.Op) {
		return current, store.Remove
	})
	if err != nil {
		return err
	}

	u.logger.Info("link deleted",
		zap.String("id", code.String()),
		zap.String("owner", owner.String()),
	)

	return nil
}

// SetLimit меняет лимит кликов ссылки владельца, 0 снимает лимит.
// Флаг активности не меняется.
func (u *LinkUsecase) SetLimit(owner uuid.UUID, code model.Code, maxClicks int) error {
	if maxClicks < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	return u.mutateOwned(owner, code, func(current model.Link) (model.Link, store.Op) {
		return current.WithMaxClicks(maxClicks), store.Put
	})
}

// MaxTTLHours наибольший срок в часах, представимый как time.Duration
const MaxTTLHours = int(math.MaxInt64 / int64(time.Hour))

// TTLFromHours переводит срок в часах в time.Duration.
// Допустимы значения от 1 до MaxTTLHours.
func TTLFromHours(hours int) (time.Duration, error) {
	if hours <= 0 {
		return 0, fmt.Errorf("%w: TTL hours must be positive", ErrInvalidInput)
	}
	if hours > MaxTTLHours {
		return 0, fmt.Errorf("%w: TTL hours must not exceed %d", ErrInvalidInput, MaxTTLHours)
	}

	return time.Duration(hours) * time.Hour, nil
}

// SetTTL пересчитывает срок жизни как CreatedAt + hours.
// Ссылка, выключенная при открытии из-за истечения срока, снова активируется,
// если новый срок ещё не наступил. Выключенная по лимиту кликов остаётся неактивной.
func (u *LinkUsecase) SetTTL(owner uuid.UUID, code model.Code, hours int) error {
	ttl, err := TTLFromHours(hours)
	if err != nil {
		return err
	}

	now := u.nowFunc()

	return u.mutateOwned(owner, code, func(current model.Link) (model.Link, store.Op) {
		next := current.WithExpiresAt(current.CreatedAt.Add(ttl))
		if !next.Active && next.InactiveReason == model.InactiveExpired &&
			!next.LimitReached() && !next.IsExpired(now) {
			next = next.Reactivate()
		}
		return next, store.Put
	})
}

// mutateOwned атомарно проверяет владельца и применяет fn к ссылке
func (u *LinkUsecase) mutateOwned(owner uuid.UUID, code model.Code, fn func(current model.Link) (model.Link, store.Op)) error {
	var err error

	u.repo.UpdateLink(code, func(current model.Link, found bool) (model.Link, store.Op) {
		if !found {
			err = fmt.Errorf("%w: %s", ErrLinkNotFound, code)
			return current, store.Keep
		}
		if current.Owner != owner {
			err = ErrForbidden
			return current, store.Keep
		}
		return fn(current)
	})

	if err != nil {
		u.logger.Debug("owner command rejected",
			zap.String("id", code.String()),
			zap.String("owner", owner.String()),
			zap.Error(err),
		)
	}

	return err
}
