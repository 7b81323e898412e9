package app

import (
	"compress/gzip"

	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/ping", h.Ping)

	// Redirect
	r.Get("/u", h.BadShortURL)
	r.Get("/u/", h.BadShortURL)
	r.Get("/u/{id}", h.Redirect)
	r.Get("/u/{id}/*", h.BadShortURL)

	// Stats
	r.With(chimw.Compress(gzip.DefaultCompression, "application/json")).
		Get("/api/links/{id}", h.GetLinkStats)

	return r
}
