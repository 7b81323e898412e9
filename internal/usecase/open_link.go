package usecase

import (
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"go.uber.org/zap"
)

// OpenLink выполняет локальное открытие ссылки.
// Истёкшая ссылка или ссылка с исчерпанным лимитом помечается неактивной,
// успешное открытие увеличивает счётчик кликов и вызывает Opener вне блокировки хранилища.
func (u *LinkUsecase) OpenLink(code model.Code) model.OpenResult {
	now := u.nowFunc()
	result := model.OpenNotFound
	var target string

	u.repo.UpdateLink(code, func(current model.Link, found bool) (model.Link, store.Op) {
		if !found {
			result = model.OpenNotFound
			return current, store.Keep
		}

		result = current.Evaluate(now)
		switch result {
		case model.OpenExpired:
			return current.Deactivate(model.InactiveExpired), store.Put
		case model.OpenLimitExceeded:
			return current.Deactivate(model.InactiveLimitReached), store.Put
		case model.OpenOK:
			target = current.Target
			return current.WithClicks(current.Clicks + 1), store.Put
		default:
			return current, store.Keep
		}
	})

	if result == model.OpenOK {
		u.performOpen(code, target)
	}

	u.logger.Debug("link opened",
		zap.String("id", code.String()),
		zap.Stringer("result", result),
	)

	return result
}

func (u *LinkUsecase) performOpen(code model.Code, target string) {
	if u.opener == nil {
		return
	}

	if err := u.opener.Open(target); err != nil {
		u.logger.Warn("failed to open link target",
			zap.String("id", code.String()),
			zap.String("target", target),
			zap.Error(err),
		)
	}
}
