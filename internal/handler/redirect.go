package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Redirect обрабатывает GET /u/{id}: 302 на адрес ссылки, 404 для отсутствующей
// или неактивной ссылки, 410 для истёкшей или исчерпавшей лимит.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")
	if !service.IsValidCode(code) {
		h.BadShortURL(w, req)
		return
	}

	target, result := h.usecase.FollowLink(model.Code(code))

	switch result {
	case model.OpenOK:
		http.Redirect(w, req, target, http.StatusFound)
	case model.OpenNotFound, model.OpenInactive:
		http.Error(w, "Not found", http.StatusNotFound)
	case model.OpenExpired:
		http.Error(w, "Expired", http.StatusGone)
	case model.OpenLimitExceeded:
		http.Error(w, "Limit exceeded", http.StatusGone)
	default:
		h.logger.Error("unexpected open result",
			zap.String("id", code),
			zap.Stringer("result", result),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// BadShortURL отвечает 400 на пути вида /u, /u/ и /u/{id}/...
func (h *Handler) BadShortURL(w http.ResponseWriter, req *http.Request) {
	h.logger.Debug("malformed short URL", zap.String("path", req.URL.Path))
	http.Error(w, "Bad short URL", http.StatusBadRequest)
}
