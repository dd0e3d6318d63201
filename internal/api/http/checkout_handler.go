package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/service"

	"github.com/gorilla/mux"
)

type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
}

func NewCheckoutHandler(checkoutSvc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

type checkoutResponse struct {
	Order   *domain.Order   `json:"order"`
	Payment *domain.Payment `json:"payment,omitempty"`
}

type chooseMethodRequest struct {
	Method string `json:"method"` // "bank" or "qpay"
}

func orderIDFrom(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDFrom(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	order, payment, err := h.checkoutSvc.GetCheckoutView(r.Context(), UserID(r), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{Order: order, Payment: payment})
}

func (h *CheckoutHandler) ChooseMethod(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDFrom(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	var req chooseMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.checkoutSvc.ChoosePaymentMethod(r.Context(), UserID(r), orderID, domain.PaymentMethod(req.Method))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}
