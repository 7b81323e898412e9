package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetLinkStats возвращает публичную статистику ссылки в JSON
func (h *Handler) GetLinkStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")
	if !service.IsValidCode(code) {
		h.handleError(w, fmt.Errorf("%w: malformed id %q", usecase.ErrInvalidInput, code))
		return
	}

	stats, err := h.usecase.GetLinkStats(model.Code(code))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("failed to encode link stats", zap.Error(err))
	}
}
