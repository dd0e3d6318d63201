package http

import (
	"encoding/json"
	"net/http"

	"greystone-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type submitRentalRequest struct {
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"` // yyyy-mm-dd
	EndDate   string `json:"end_date"`   // yyyy-mm-dd
	Quantity  int32  `json:"quantity"`
}

func (h *RentalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := h.rentalSvc.SubmitRentalRequest(r.Context(), UserID(r), req.ToolID, req.StartDate, req.EndDate, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListMyRentals(r.Context(), UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
