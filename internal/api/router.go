package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ots-platform/ibe-mock/internal/api/recovery"
	"github.com/ots-platform/ibe-mock/internal/metrics"
)

// route is one row of the declarative route table.
type route struct {
	methods []string
	path    string
	handler http.HandlerFunc
}

const (
	cartBase    = "/api/v1/orders/{orderId}/shoppingCarts/{shoppingCartId}"
	airBase     = cartBase + "/airs/{airId}"
	profileCart = "/api/v1/profile/orders/{orderId}/shoppingCarts/{shoppingCartId}"
)

func (h *Handler) routes() []route {
	return []route{
		// Flights.
		{[]string{http.MethodPost}, "/api/v1/flights/search", h.FlightsSearch},
		{[]string{http.MethodPost}, cartBase + "/flights/search", h.FlightsSearchWithCart},
		{[]string{http.MethodGet}, cartBase + "/flights/search", h.FlightsSearchContext},
		{[]string{http.MethodPut}, cartBase + "/flights/search/optionSets/{optionSetId}/option/{optionId}/solution/{solutionId}", h.SelectSolution},
		{[]string{http.MethodPut}, "/api/v1/upsell/orders/{orderId}/shoppingCarts/{shoppingCartId}/flights/search/optionSets/{optionSetId}/option/{optionId}/solution/{solutionId}", h.SelectSolution},
		{[]string{http.MethodPut}, cartBase + "/flights/search/deselect/options", h.DeselectOptions},
		{[]string{http.MethodPost, http.MethodDelete}, cartBase + "/flights/search/selection/confirmation", h.SelectionConfirmation},

		// Seats.
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/seats", h.Seats},
		{[]string{http.MethodPut}, airBase + "/ancillaries/seats", h.Seats},
		{[]string{http.MethodPost}, airBase + "/seats/preselect", h.SeatsPreselect},
		{[]string{http.MethodPost}, airBase + "/preseat/suggestion", h.SeatsPreselect},
		{[]string{http.MethodPost}, cartBase + "/extraseat/seats/preselect", h.SeatsPreselect},
		{[]string{http.MethodPost}, airBase + "/special-assistance-seats/update", h.SpecialAssistanceSeats},

		// Bags.
		{[]string{http.MethodPut}, airBase + "/baggage", h.Bags},
		{[]string{http.MethodPut}, airBase + "/ancillaries/bags", h.Bags},
		{[]string{http.MethodDelete}, airBase + "/bags", h.Bags},

		// Meals.
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/meals", h.Meals},
		{[]string{http.MethodPut}, airBase + "/ancillaries/meals", h.Meals},

		// Booking.
		{[]string{http.MethodPost}, cartBase + "/bookings", h.CreateBooking},

		// Cabins.
		{[]string{http.MethodGet}, airBase + "/cabins", h.Cabins},
		{[]string{http.MethodGet}, "/api/v1/shoppingCarts/{shoppingCartId}/airs/{airId}/cabins", h.Cabins},
		{[]string{http.MethodGet}, "/api/v1/orders/{orderId}/airs/{airId}/cabins", h.Cabins},
		{[]string{http.MethodGet}, "/api/v1/orders/{orderId}/airs/{airId}/segments/{segmentId}/passengers/{passengerId}/cabins", h.Cabins},
	}
}

// stubRoutes lists the rest of the surface the booking UI may call. Each
// answers a success envelope with a NOT_IMPLEMENTED warning.
func (h *Handler) stubRoutes() []route {
	paths := []struct {
		methods []string
		path    string
	}{
		{[]string{http.MethodPost}, "/api/v1/flights/calendar/search"},
		{[]string{http.MethodGet}, "/api/v1/flights/search/airlines"},
		{[]string{http.MethodPost}, "/api/v1/flights/search/deeplink"},
		{[]string{http.MethodPost}, "/api/v1/flights/search/passengers"},
		{[]string{http.MethodPost}, "/api/v1/flights/servicePassengersData"},
		{[]string{http.MethodPost}, "/api/v1/flights/subscribe"},
		{[]string{http.MethodPut}, "/api/v1/flights/upgrade/aircrafts"},
		{[]string{http.MethodPut}, "/api/v1/flights/upgrade/airlines"},
		{[]string{http.MethodPost}, "/api/v1/miles/calculator"},
		{[]string{http.MethodPost}, "/api/v1/minPrice/city"},
		{[]string{http.MethodGet}, "/api/v1/orders/{orderId}/airs/{airId}/flight-change-proposals/search"},
		{[]string{http.MethodPost}, "/api/v1/orders/{orderId}/airs/{airId}/passengers/{passengerId}/pet"},
		{[]string{http.MethodGet}, "/api/v1/orders/{orderId}/flights/fare-rules"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/ancillaries"},
		{[]string{http.MethodPut}, airBase + "/ancillaries/confirmation"},
		{[]string{http.MethodDelete}, airBase + "/auto-checkins"},
		{[]string{http.MethodPut}, airBase + "/autoCheckins"},
		{[]string{http.MethodPut}, airBase + "/carbon-offsets"},
		{[]string{http.MethodGet}, airBase + "/check/visa/required"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/dafars"},
		{[]string{http.MethodPut}, airBase + "/esims"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/fast-tracks"},
		{[]string{http.MethodPut}, airBase + "/flightChanges"},
		{[]string{http.MethodPut}, airBase + "/flights-ancillaries"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/free-refunds"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/lounges"},
		{[]string{http.MethodDelete}, airBase + "/marketplace-products"},
		{[]string{http.MethodPut}, airBase + "/miles"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/pets"},
		{[]string{http.MethodGet}, airBase + "/pets/availability"},
		{[]string{http.MethodGet}, airBase + "/pets/confirm"},
		{[]string{http.MethodPut, http.MethodDelete}, airBase + "/prepays"},
		{[]string{http.MethodGet}, airBase + "/restrict/residences"},
		{[]string{http.MethodPost}, airBase + "/special-assistance/update"},
		{[]string{http.MethodPut}, airBase + "/tariff/{tariffId}"},
		{[]string{http.MethodPut}, airBase + "/upgrades"},
		{[]string{http.MethodPost}, cartBase + "/ancillaries/special-assistance/confirmation"},
		{[]string{http.MethodPut}, cartBase + "/deposit"},
		{[]string{http.MethodGet}, cartBase + "/documents/options"},
		{[]string{http.MethodGet}, cartBase + "/flights/fare-rules"},
		{[]string{http.MethodPut}, cartBase + "/flights/search/check/campaign"},
		{[]string{http.MethodPost}, cartBase + "/flights/search/deeplink"},
		{[]string{http.MethodPost}, cartBase + "/flights/search/histogram"},
		{[]string{http.MethodPut}, cartBase + "/flights/search/optionSets/{optionSetId}/histogram/{shiftDays}"},
		{[]string{http.MethodPut}, cartBase + "/flights/search/restore"},
		{[]string{http.MethodPut, http.MethodGet, http.MethodDelete}, cartBase + "/insurances"},
		{[]string{http.MethodDelete}, cartBase + "/products/cashless_unsupported"},
		{[]string{http.MethodPut}, cartBase + "/sms"},
		{[]string{http.MethodPut}, cartBase + "/taxes"},
		{[]string{http.MethodPost}, "/api/v1/orders/{orderId}/special-assistance/confirmation"},
		{[]string{http.MethodPost, http.MethodPut}, "/api/v1/profile"},
		{[]string{http.MethodGet}, "/api/v1/profile/availability"},
		{[]string{http.MethodPost}, "/api/v1/profile/ffpSuggest"},
		{[]string{http.MethodPost}, "/api/v1/profile/loyalty-program/search"},
		{[]string{http.MethodPost}, "/api/v1/profile/orders/{orderId}/create-miles-surcharge"},
		{[]string{http.MethodPut}, profileCart + "/customer"},
		{[]string{http.MethodPost, http.MethodGet, http.MethodDelete}, profileCart + "/miles/transaction"},
		{[]string{http.MethodPost}, profileCart + "/miles/transaction/resending"},
		{[]string{http.MethodGet}, "/api/v1/profile/password-policies"},
		{[]string{http.MethodPut}, "/api/v1/profile/phone/confirmation"},
		{[]string{http.MethodPost}, "/api/v1/profile/phone/confirmation/code"},
		{[]string{http.MethodPost}, "/api/v1/profile/profile"},
		{[]string{http.MethodGet}, "/api/v1/profile/profiles"},
		{[]string{http.MethodPost}, "/api/v1/profile/resend-profile-confirmation"},
		{[]string{http.MethodPost, http.MethodDelete}, "/api/v1/profile/session"},
		{[]string{http.MethodPost}, "/api/v1/profile/session/operator"},
		{[]string{http.MethodPost}, "/api/v1/profile/subscriptions"},
		{[]string{http.MethodPut}, "/api/v1/profile/synchronization"},
		{[]string{http.MethodPut}, "/api/v1/profile/traveller"},
		{[]string{http.MethodGet, http.MethodPost}, "/api/v1/profile/travellers"},
		{[]string{http.MethodGet}, "/api/v1/profile/{deviceId}"},
		{[]string{http.MethodPost}, "/api/v1/reissue/orders/{orderId}/airs/{airId}/calendar/search"},
	}
	out := make([]route, 0, len(paths))
	for _, p := range paths {
		out = append(out, route{methods: p.methods, path: p.path, handler: h.Stub})
	}
	return out
}

// NewRouter assembles the full route table with recovery and metrics
// middleware. Explicit routes win over the /api/v1 catch-all.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(recovery.Middleware)
	r.Use(metrics.Middleware)

	for _, rt := range h.routes() {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.methods...)
	}
	for _, rt := range h.stubRoutes() {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.methods...)
	}

	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/api/v1/").HandlerFunc(h.NotFound)
	return r
}
