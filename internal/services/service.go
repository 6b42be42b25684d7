package services

import (
	"github.com/ots-platform/ibe-mock/internal/pricing"
	"github.com/ots-platform/ibe-mock/internal/store"
)

// Service runs the booking flows. Every method returns the extra response
// payload (merged into the envelope by the respond package) plus any domain
// warnings it raised; HTTP status is always 200 upstream.
type Service struct {
	store    *store.Store
	engine   *pricing.Engine
	currency string
	debug    bool
}

// New wires a service to a constructed store and repricing engine.
func New(st *store.Store, engine *pricing.Engine, defaultCurrency string, debug bool) *Service {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &Service{store: st, engine: engine, currency: defaultCurrency, debug: debug}
}

// mock attaches a diagnostic object under "mock" when debug mode is on.
func (s *Service) mock(payload map[string]any, meta map[string]any) {
	if s.debug {
		payload["mock"] = meta
	}
}

func ids3(orderID, cartID, airID string) map[string]any {
	return map[string]any{"orderId": orderID, "shoppingCartId": cartID, "airId": airID}
}
