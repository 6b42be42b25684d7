package api

import (
	"net/http"

	"github.com/ots-platform/ibe-mock/internal/api/respond"
)

// Seats handles PUT and DELETE on .../airs/{airId}/seats, and the
// ancillaries-wrapped PUT variant.
func (h *Handler) Seats(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	orderID, cartID, airID := vars["orderId"], vars["shoppingCartId"], vars["airId"]

	if r.Method == http.MethodDelete {
		payload, more := h.svc.DeleteSeats(rc, orderID, cartID, airID, r.URL.Query().Get("segmentId"))
		respond.WriteOK(w, payload, merge(warnings, more))
		return
	}
	payload, more := h.svc.UpdateSeats(rc, orderID, cartID, airID, decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// SeatsPreselect handles the preselect and preseat suggestion endpoints.
func (h *Handler) SeatsPreselect(w http.ResponseWriter, r *http.Request) {
	rc, _, warnings := h.begin(r)
	payload, more := h.svc.PreselectSeats(rc, decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// SpecialAssistanceSeats handles POST .../special-assistance-seats/update.
func (h *Handler) SpecialAssistanceSeats(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.SpecialAssistanceSeats(rc, vars["orderId"], vars["shoppingCartId"], vars["airId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}

// Bags handles PUT .../baggage, PUT .../ancillaries/bags and DELETE .../bags.
func (h *Handler) Bags(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	orderID, cartID, airID := vars["orderId"], vars["shoppingCartId"], vars["airId"]

	if r.Method == http.MethodDelete {
		payload, more := h.svc.DeleteBags(rc, orderID, cartID, airID, r.URL.Query().Get("routeId"))
		respond.WriteOK(w, payload, merge(warnings, more))
		return
	}
	payload, more := h.svc.UpdateBags(rc, orderID, cartID, airID, decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// Meals handles PUT and DELETE on .../airs/{airId}/meals, and the
// ancillaries-wrapped PUT variant.
func (h *Handler) Meals(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	orderID, cartID, airID := vars["orderId"], vars["shoppingCartId"], vars["airId"]

	if r.Method == http.MethodDelete {
		segmentID := r.URL.Query().Get("segmentId")
		if segmentID == "" {
			segmentID = r.URL.Query().Get("routeId")
		}
		payload, more := h.svc.DeleteMeals(rc, orderID, cartID, airID, segmentID)
		respond.WriteOK(w, payload, merge(warnings, more))
		return
	}
	payload, more := h.svc.UpdateMeals(rc, orderID, cartID, airID, decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// Cabins renders the seat map; it backs all four cabins route shapes.
func (h *Handler) Cabins(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.Cabins(rc, vars["orderId"], vars["shoppingCartId"], vars["airId"], vars["segmentId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}
