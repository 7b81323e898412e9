package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name Usecase

// Usecase определяет операции жизненного цикла ссылок, доступные по HTTP
type Usecase interface {
	FollowLink(code model.Code) (string, model.OpenResult)
	GetLinkStats(code model.Code) (model.LinkStats, error)
}

// Handler обрабатывает HTTP запросы к коротким ссылкам
type Handler struct {
	usecase Usecase
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase Usecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Ping сообщает, что сервер жив
func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleError преобразует ошибки usecase в HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrLinkNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInput):
		http.Error(w, "Bad request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
