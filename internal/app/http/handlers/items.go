package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tankar/quote_backend/internal/domain/quote"
)

// Category tags used on the wire. The display label stays a domain concern.
const (
	categoryConsulting             = "consulting"
	categoryWirelessImplementation = "wireless_implementation"
	categoryWirelessSurvey         = "wireless_survey"
	categoryNetworkDesign          = "network_design"
	categoryIndustrialManagement   = "industrial_management"
	categoryTraining               = "training"
	categoryEquipmentSale          = "equipment_sale"
)

// itemRequest is the union of all category parameter sets; the category tag
// decides which fields matter.
type itemRequest struct {
	Category        string   `json:"category"`
	Summary         string   `json:"summary"`
	Hours           int      `json:"hours"`
	AdditionalHours int      `json:"additional_hours"`
	Floors          int      `json:"floors"`
	AreaBand        string   `json:"area_band"`
	NetworkType     string   `json:"network_type"`
	Employees       int      `json:"employees"`
	Course          string   `json:"course"`
	WantsEquipment  bool     `json:"wants_equipment"`
	Equipment       []string `json:"equipment"`
	Services        []string `json:"services"`
}

func (req itemRequest) pricingInput() (quote.PricingInput, error) {
	switch req.Category {
	case categoryConsulting:
		return quote.ConsultingParams{
			Summary:        req.Summary,
			Hours:          req.Hours,
			WantsEquipment: req.WantsEquipment,
			Equipment:      req.Equipment,
		}, nil
	case categoryWirelessImplementation:
		return quote.WirelessImplementationParams{
			Summary:         req.Summary,
			AdditionalHours: req.AdditionalHours,
		}, nil
	case categoryWirelessSurvey:
		return quote.WirelessSurveyParams{
			Summary: req.Summary,
			Floors:  req.Floors,
			Band:    quote.AreaBand(req.AreaBand),
		}, nil
	case categoryNetworkDesign:
		return quote.NetworkDesignParams{
			Description: req.Summary,
			Hours:       req.Hours,
			Type:        quote.NetworkType(req.NetworkType),
		}, nil
	case categoryIndustrialManagement:
		return quote.IndustrialManagementParams{
			Summary:   req.Summary,
			Employees: req.Employees,
			Services:  req.Services,
		}, nil
	case categoryTraining:
		return quote.TrainingParams{Course: req.Course, Notes: req.Summary}, nil
	case categoryEquipmentSale:
		return quote.EquipmentSaleParams{}, nil
	default:
		return nil, &quote.ValidationError{Field: "category", Msg: "is unknown"}
	}
}

func decodeItemRequest(w http.ResponseWriter, r *http.Request) (quote.PricingInput, bool) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}
	in, err := req.pricingInput()
	if err != nil {
		writeErr(w, err)
		return nil, false
	}
	return in, true
}

// PreviewItem prices a candidate line item without touching the quote, so
// the collaborator can show the breakdown before the user confirms.
func (h *Handlers) PreviewItem(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}
	if err := h.Sessions.View(chi.URLParam(r, "id"), func(*quote.Quote) error { return nil }); err != nil {
		writeErr(w, err)
		return
	}
	item, err := quote.NewLineItem(in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// AddItem validates, prices and appends one line item. On a validation error
// nothing is appended and the caller keeps its in-progress input.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}
	var added quote.LineItem
	var index int
	err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		item, err := quote.NewLineItem(in)
		if err != nil {
			return err
		}
		q.AddItem(item)
		added = item
		index = len(q.Items) - 1
		return nil
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"index": index, "item": added})
}

// DuplicateItem appends a copy of the item at the given index. A stale index
// is a deliberate no-op: the UI may act on an outdated listing.
func (h *Handlers) DuplicateItem(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	if err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		q.DuplicateItem(idx)
		return nil
	}); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem removes the item at the given index; stale indexes are no-ops.
func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	if err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		q.DeleteItem(idx)
		return nil
	}); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ClearItems(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Update(chi.URLParam(r, "id"), func(q *quote.Quote) error {
		q.ClearItems()
		return nil
	}); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
