package services

import (
	"strconv"
	"strings"

	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/pricing"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

func makeBagItem(sel model.BaggageSelection, baggageID string, idx int, currency string) model.BagItem {
	discounted := idx == 0
	amount := pricing.BagRegularAmount
	code, name := "BAG_REGULAR", "1 bag"
	if discounted {
		amount = pricing.BagDiscountedAmount
		code, name = "BAG_DISCOUNTED", "1 bag discounted"
	}
	seed := sel.PassengerID + "|" + sel.RouteID + "|" + baggageID + "|" + strconv.Itoa(idx)
	return model.BagItem{
		ID:          ids.StableID("bag", seed, 16),
		PassengerID: sel.PassengerID,
		RouteID:     sel.RouteID,
		BaggageID:   baggageID,
		Discounted:  discounted,
		Amount:      amount,
		Currency:    currency,
		Code:        code,
		Name:        name,
		CreatedAt:   ids.NowUTC(),
	}
}

// mergeBags replaces the selection for each incoming (passenger, route) pair
// and keeps the rest. Both ids are required; at most two bags per pair are
// kept.
func mergeBags(existing, incoming []model.BaggageSelection) ([]model.BaggageSelection, []model.Warning) {
	var warnings []model.Warning
	merged := make([]model.BaggageSelection, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)

	for _, sel := range incoming {
		sel.PassengerID = strings.TrimSpace(sel.PassengerID)
		sel.RouteID = strings.TrimSpace(sel.RouteID)
		if sel.PassengerID == "" || sel.RouteID == "" {
			warnings = append(warnings, model.NewWarning(model.WarnBagSelectionInvalid,
				"Baggage selection requires passengerId and routeId; ignored.",
				map[string]any{"passengerId": sel.PassengerID, "routeId": sel.RouteID}))
			continue
		}
		requested := len(sel.BaggageIDs)
		if requested > pricing.BagLimit {
			sel.BaggageIDs = sel.BaggageIDs[:pricing.BagLimit]
			warnings = append(warnings, model.NewWarning(model.WarnBagLimitApplied,
				"Baggage is limited to 2 items per passenger and route.",
				map[string]any{
					"passengerId": sel.PassengerID,
					"routeId":     sel.RouteID,
					"requested":   requested,
					"kept":        pricing.BagLimit,
				}))
		}

		replaced := false
		for i := range merged {
			if merged[i].PassengerID == sel.PassengerID && merged[i].RouteID == sel.RouteID {
				merged[i] = sel
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, sel)
		}
	}
	return merged, warnings
}

func deriveBagItems(selections []model.BaggageSelection, currency string) ([]model.BagItem, *model.BaggagePricing) {
	items := []model.BagItem{}
	total := 0.0
	for _, sel := range selections {
		for idx, bid := range sel.BaggageIDs {
			item := makeBagItem(sel, bid, idx, currency)
			items = append(items, item)
			total += item.Amount
		}
	}
	return items, &model.BaggagePricing{
		Currency: currency,
		Items:    items,
		Total:    model.NewPlainPrice(total, currency),
	}
}

// UpdateBags merges the request's baggage selections into the air, rebuilds
// the priced bag items, and reprices the cart.
func (s *Service) UpdateBags(rc *reqctx.Context, orderID, cartID, airID string, body map[string]any) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	currency := s.orderCurrency(orderID)
	incoming := NormalizeBaggageSelections(body)
	var (
		merged   []model.BaggageSelection
		items    []model.BagItem
		warnings []model.Warning
	)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		merged, warnings = mergeBags(air.Ancillaries.BaggageSelections, incoming)
		var bagPricing *model.BaggagePricing
		items, bagPricing = deriveBagItems(merged, currency)
		air.Ancillaries.BaggageSelections = merged
		air.Ancillaries.BaggageItems = items
		air.Ancillaries.BaggagePricing = bagPricing
	})

	payload := s.bagsCartPayload(orderID, cartID, airID, merged, items)
	s.mock(payload, map[string]any{
		"kind":      "BaggageSelection",
		"ids":       ids3(orderID, cartID, airID),
		"bagsCount": len(items),
	})
	return payload, warnings
}

// DeleteBags clears baggage selections, optionally only for one route.
func (s *Service) DeleteBags(rc *reqctx.Context, orderID, cartID, airID, routeID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	routeID = strings.TrimSpace(routeID)
	currency := s.orderCurrency(orderID)
	kept := []model.BaggageSelection{}
	var items []model.BagItem
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		if routeID != "" {
			for _, sel := range air.Ancillaries.BaggageSelections {
				if sel.RouteID != routeID {
					kept = append(kept, sel)
				}
			}
		}
		var bagPricing *model.BaggagePricing
		items, bagPricing = deriveBagItems(kept, currency)
		air.Ancillaries.BaggageSelections = kept
		air.Ancillaries.BaggageItems = items
		air.Ancillaries.BaggagePricing = bagPricing
	})

	var route any
	if routeID != "" {
		route = routeID
	}
	warnings := []model.Warning{model.NewWarning(model.WarnBagsCleared,
		"Bags were cleared.", map[string]any{"routeId": route})}

	payload := s.bagsCartPayload(orderID, cartID, airID, kept, items)
	s.mock(payload, map[string]any{
		"kind":      "BaggageDelete",
		"ids":       ids3(orderID, cartID, airID),
		"routeId":   route,
		"bagsCount": len(items),
	})
	return payload, warnings
}

// orderCurrency reads the order's currency under the store lock, falling
// back to the service default.
func (s *Service) orderCurrency(orderID string) string {
	currency := s.currency
	s.store.ViewOrder(orderID, func(order *model.Order) {
		if order.Currency != "" {
			currency = order.Currency
		}
	})
	return currency
}

func (s *Service) bagsCartPayload(orderID, cartID, airID string, selections []model.BaggageSelection, items []model.BagItem) map[string]any {
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.Step = model.StepBags
	})
	p := s.engine.Reprice(orderID, cartID, airID)
	currency := p.Total.Price.Currency

	view := BuildCartView(orderID, cartID, airID, currency, model.StepBags, p)
	AttachAncillary(view, "baggageSelections", selections)
	AttachAncillary(view, "baggageItems", items)

	bagTotal := 0.0
	for _, it := range items {
		bagTotal += it.Amount
	}
	AttachAncillary(view, "baggagePricing", model.BaggagePricing{
		Currency: currency,
		Items:    items,
		Total:    model.NewPlainPrice(bagTotal, currency),
	})
	return map[string]any{
		"retrieve":     map[string]any{"shoppingCart": true, "ancillariesPricing": true},
		"shoppingCart": view,
	}
}
