package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tankar/quote_backend/internal/app/config"
	"tankar/quote_backend/internal/app/http/handlers"
	"tankar/quote_backend/internal/app/http/middleware"
	"tankar/quote_backend/internal/domain/quote/pdf"
	"tankar/quote_backend/internal/infra/sessions"
)

func NewRouter(cfg config.Config, store *sessions.Store, gen pdf.Generator, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))

	h := handlers.New(store, gen, cfg, log)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/catalog", h.Catalog)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)

			r.Put("/header", h.SetHeader)
			r.Put("/adjustments", h.SetAdjustments)
			r.Put("/notes", h.SetNotes)

			r.Post("/items/preview", h.PreviewItem)
			r.Post("/items", h.AddItem)
			r.Post("/items/{idx}/duplicate", h.DuplicateItem)
			r.Delete("/items/{idx}", h.DeleteItem)
			r.Delete("/items", h.ClearItems)

			r.Get("/export/text", h.ExportText)
			r.Get("/export/pdf", h.ExportPDF)
		})
	})

	return r
}
