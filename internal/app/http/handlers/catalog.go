package handlers

import (
	"net/http"

	"tankar/quote_backend/internal/domain/quote"
)

type catalogResponse struct {
	Categories         []string `json:"categories"`
	AreaBands          []string `json:"area_bands"`
	NetworkTypes       []string `json:"network_types"`
	TrainingCourses    []string `json:"training_courses"`
	EquipmentOptions   []string `json:"equipment_options"`
	IndustrialServices []string `json:"industrial_services"`
}

// Catalog exposes the fixed form options so the collaborator UI never
// hardcodes them.
func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		Categories: []string{
			categoryConsulting,
			categoryWirelessImplementation,
			categoryWirelessSurvey,
			categoryNetworkDesign,
			categoryIndustrialManagement,
			categoryTraining,
			categoryEquipmentSale,
		},
		TrainingCourses:    quote.TrainingCourses,
		EquipmentOptions:   quote.EquipmentOptions,
		IndustrialServices: quote.IndustrialServiceOptions,
	}
	for _, b := range quote.AreaBands() {
		resp.AreaBands = append(resp.AreaBands, string(b))
	}
	for _, t := range quote.NetworkTypes() {
		resp.NetworkTypes = append(resp.NetworkTypes, string(t))
	}
	writeJSON(w, http.StatusOK, resp)
}
