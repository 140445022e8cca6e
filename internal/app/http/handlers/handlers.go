package handlers

import (
	"log/slog"

	"tankar/quote_backend/internal/app/config"
	"tankar/quote_backend/internal/domain/quote/pdf"
	"tankar/quote_backend/internal/infra/sessions"
)

type Handlers struct {
	Sessions *sessions.Store
	PDF      pdf.Generator
	Cfg      config.Config
	Log      *slog.Logger
}

func New(store *sessions.Store, gen pdf.Generator, cfg config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		Sessions: store,
		PDF:      gen,
		Cfg:      cfg,
		Log:      log,
	}
}
