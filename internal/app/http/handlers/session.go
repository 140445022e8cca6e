package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tankar/quote_backend/internal/domain/quote"
)

type sessionView struct {
	ID      string           `json:"id"`
	Header  quote.Header     `json:"header"`
	Items   []quote.LineItem `json:"items"`
	Notes   string           `json:"notes"`
	Summary quote.Summary    `json:"summary"`
}

func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.Sessions.Create()
	h.Log.Info("session created", "id", id)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var view sessionView
	err := h.Sessions.View(id, func(q *quote.Quote) error {
		view = sessionView{
			ID:      id,
			Header:  q.Header,
			Items:   q.Items,
			Notes:   q.Notes,
			Summary: q.Summary(),
		}
		return nil
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetHeader(w http.ResponseWriter, r *http.Request) {
	var hdr quote.Header
	if err := json.NewDecoder(r.Body).Decode(&hdr); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		return q.SetHeader(hdr)
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetAdjustments(w http.ResponseWriter, r *http.Request) {
	var adj quote.Adjustments
	if err := json.NewDecoder(r.Body).Decode(&adj); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		return q.SetAdjustments(adj)
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		return q.SetNotes(req.Notes)
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
