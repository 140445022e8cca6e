package app

import (
	"log"
	"net/http"
	"time"

	"tankar/quote_backend/internal/app/config"
	apphttp "tankar/quote_backend/internal/app/http"
	pdfgen "tankar/quote_backend/internal/domain/quote/pdf/gofpdf"
	"tankar/quote_backend/internal/infra/logger"
	"tankar/quote_backend/internal/infra/sessions"
)

func Run() {
	cfg := config.MustLoad()
	slogger := logger.New(cfg.Env)

	store := sessions.New()
	gen := pdfgen.New(cfg.LogoPath, cfg.PDFWrapChunk)

	router := apphttp.NewRouter(cfg, store, gen, slogger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slogger.Info("listening", "addr", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
