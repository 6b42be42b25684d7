package services

import "github.com/ots-platform/ibe-mock/internal/model"

// BuildCartView renders the shopping-cart payload every endpoint returns.
// This is the only place the cart shape is assembled; callers override step
// and pricing and fan ancillaries in afterwards.
func BuildCartView(orderID, cartID, airID, currency, step string, pricing model.Pricing) map[string]any {
	if step == "" {
		step = model.StepFlightsSearch
	}
	return map[string]any{
		"id":              cartID,
		"status":          model.CartStatusOpen,
		"step":            step,
		"currentCurrency": currency,
		"currencies":      []string{currency},
		"tripType":        nil,
		"products":        []any{},
		"pricing":         pricing,
		"order": map[string]any{
			"id":         orderID,
			"number":     orderID,
			"status":     model.OrderStatusDraft,
			"addedAirId": airID,
			"airs":       []any{map[string]any{"id": airID}},
			"passengers": []any{},
			"payments":   []any{},
			"transfers":  []any{},
			"offline":    false,
			"snapshot":   false,
		},
		"customer":   map[string]any{},
		"searchLink": nil,
	}
}

// cartFirstAir digs out order.airs[0] of a rendered cart view.
func cartFirstAir(cart map[string]any) map[string]any {
	order, ok := cart["order"].(map[string]any)
	if !ok {
		return nil
	}
	airs, ok := order["airs"].([]any)
	if !ok || len(airs) == 0 {
		return nil
	}
	air, _ := airs[0].(map[string]any)
	return air
}

// AttachAncillary fans one ancillary collection out to every location
// clients read it from: the cart itself, the order's first air, and that
// air's ancillaries block.
func AttachAncillary(cart map[string]any, key string, value any) {
	cart[key] = value
	air := cartFirstAir(cart)
	if air == nil {
		return
	}
	air[key] = value
	anc, ok := air["ancillaries"].(map[string]any)
	if !ok {
		anc = map[string]any{}
		air["ancillaries"] = anc
	}
	anc[key] = value
}

// attachSelectedRoutes enriches the order's first air with the routes of
// the currently selected options, for itinerary summaries.
func attachSelectedRoutes(cart map[string]any, fs *model.FlightsSearch) {
	if fs == nil {
		return
	}
	var routes []model.Route
	for _, set := range fs.OptionSets {
		optionID, _ := set.SelectedIDs()
		if opt := set.FindOption(optionID); opt != nil {
			routes = append(routes, opt.Routes...)
		}
	}
	if len(routes) == 0 {
		return
	}
	if air := cartFirstAir(cart); air != nil {
		air["routes"] = routes
	}
}
