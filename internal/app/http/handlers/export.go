package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tankar/quote_backend/internal/domain/quote"
)

func (h *Handlers) assembleForExport(r *http.Request, now time.Time) (quote.Document, error) {
	var doc quote.Document
	err := h.Sessions.View(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		if err := q.ExportReady(); err != nil {
			return err
		}
		doc = quote.Assemble(q, now)
		return nil
	})
	return doc, err
}

func (h *Handlers) ExportText(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	doc, err := h.assembleForExport(r, now)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", quote.ExportFilename("txt", now)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc.Text()))
}

func (h *Handlers) ExportPDF(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	doc, err := h.assembleForExport(r, now)
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := h.PDF.Generate(doc)
	if err != nil {
		h.Log.Error("pdf generation failed", "err", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", quote.ExportFilename("pdf", now)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
