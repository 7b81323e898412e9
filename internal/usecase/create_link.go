package usecase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateLinkFromString создает короткую ссылку владельца из строки URL.
// Выполняет очистку и валидацию URL, лимит и TTL передаются как есть (nil означает значения по умолчанию).
func (u *LinkUsecase) CreateLinkFromString(owner uuid.UUID, rawURL string, limit *int, ttl *time.Duration) (model.Link, error) {
	target, err := ValidateURL(rawURL)
	if err != nil {
		return model.Link{}, err
	}

	if ttl != nil && *ttl <= 0 {
		return model.Link{}, fmt.Errorf("%w: TTL must be positive", ErrInvalidInput)
	}

	link, err := u.service.CreateLink(owner, target, limit, ttl)
	if err != nil {
		u.logger.Error("failed to create link",
			zap.String("target", target),
			zap.String("owner", owner.String()),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Debug("link created",
		zap.String("id", link.ID.String()),
		zap.String("target", link.Target),
	)

	return link, nil
}

// ShortURL строит полный короткий адрес ссылки по базовому URL из конфигурации
func (u *LinkUsecase) ShortURL(code model.Code) string {
	return u.cfg.BaseURL.String() + code.String()
}

// ValidateURL очищает строку и проверяет, что это абсолютный http(s) URL с хостом
func ValidateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	rawURL = strings.Trim(rawURL, `"'`)

	if rawURL == "" {
		return "", ErrEmptyURL
	}

	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "", ErrInvalidURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("%w: host is missing", ErrInvalidURL)
	}

	return rawURL, nil
}
