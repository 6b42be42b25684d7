package api

import (
	"net/http"

	"github.com/ots-platform/ibe-mock/internal/api/respond"
)

// FlightsSearch handles POST /api/v1/flights/search.
func (h *Handler) FlightsSearch(w http.ResponseWriter, r *http.Request) {
	rc, _, warnings := h.begin(r)
	payload, more := h.svc.Search(rc, decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// FlightsSearchWithCart handles POST on the cart-scoped search path.
func (h *Handler) FlightsSearchWithCart(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.SearchWithCart(rc, vars["orderId"], vars["shoppingCartId"], decodeBody(r))
	respond.WriteOK(w, payload, merge(warnings, more))
}

// FlightsSearchContext handles GET on the cart-scoped search path.
func (h *Handler) FlightsSearchContext(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.SearchContext(rc, vars["orderId"], vars["shoppingCartId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}

// SelectSolution handles PUT .../optionSets/{optionSetId}/option/{optionId}/solution/{solutionId}.
func (h *Handler) SelectSolution(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.SelectSolution(rc, vars["orderId"], vars["shoppingCartId"],
		vars["optionSetId"], vars["optionId"], vars["solutionId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}

// DeselectOptions handles PUT .../flights/search/deselect/options.
func (h *Handler) DeselectOptions(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.Deselect(rc, vars["orderId"], vars["shoppingCartId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}

// SelectionConfirmation handles POST and DELETE on .../selection/confirmation.
func (h *Handler) SelectionConfirmation(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.Confirm(rc, vars["orderId"], vars["shoppingCartId"], r.Method == http.MethodPost)
	respond.WriteOK(w, payload, merge(warnings, more))
}

// CreateBooking handles POST .../bookings.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	rc, vars, warnings := h.begin(r)
	payload, more := h.svc.CreateBooking(rc, vars["orderId"], vars["shoppingCartId"])
	respond.WriteOK(w, payload, merge(warnings, more))
}
