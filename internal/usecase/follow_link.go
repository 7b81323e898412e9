package usecase

import (
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"go.uber.org/zap"
)

// FollowLink выполняет переход по ссылке через HTTP.
// Порядок проверок совпадает с OpenLink, но истёкшая ссылка сразу удаляется,
// а при исчерпанном лимите ссылка не изменяется. При OpenOK возвращает адрес перехода.
func (u *LinkUsecase) FollowLink(code model.Code) (string, model.OpenResult) {
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
			return current, store.Remove
		case model.OpenOK:
			target = current.Target
			return current.WithClicks(current.Clicks + 1), store.Put
		default:
			return current, store.Keep
		}
	})

	if result == model.OpenExpired {
		u.logger.Info("expired link removed on access",
			zap.String("id", code.String()),
		)
	}

	return target, result
}
