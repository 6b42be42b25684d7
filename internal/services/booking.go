package services

import (
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

// CreateBooking moves the cart to the payment step. The body is accepted
// but not interpreted; the last computed pricing is kept and any stored
// ancillaries are echoed back on the cart.
func (s *Service) CreateBooking(rc *reqctx.Context, orderID, cartID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)
	airID := s.store.ResolveAir(rc, orderID, cartID)
	s.store.EnsureAir(orderID, cartID, airID)

	currency := s.currency
	pricing := model.NewPricing(0, currency)
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		if cart.Pricing != nil {
			pricing = *cart.Pricing
			if c := pricing.Total.Price.Currency; c != "" {
				currency = c
			}
		}
		cart.Step = model.StepPayment
	})

	view := BuildCartView(orderID, cartID, airID, currency, model.StepPayment, pricing)
	s.store.ViewAir(airID, func(air *model.Air) {
		if air.Ancillaries.SeatSelections != nil {
			AttachAncillary(view, "seatSelections", air.Ancillaries.SeatSelections)
		}
		if air.Ancillaries.BaggageSelections != nil {
			AttachAncillary(view, "baggageSelections", air.Ancillaries.BaggageSelections)
		}
		if air.Ancillaries.BaggageItems != nil {
			AttachAncillary(view, "baggageItems", air.Ancillaries.BaggageItems)
		}
		if air.Ancillaries.MealSelections != nil {
			AttachAncillary(view, "mealSelections", air.Ancillaries.MealSelections)
		}
	})

	payload := map[string]any{
		"retrieve":     map[string]any{"shoppingCart": true, "ancillariesPricing": true},
		"shoppingCart": view,
	}
	s.mock(payload, map[string]any{"kind": "BookingsCreate", "ids": ids3(orderID, cartID, airID)})
	return payload, nil
}
