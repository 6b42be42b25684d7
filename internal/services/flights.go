package services

import (
	"github.com/ots-platform/ibe-mock/internal/catalog"
	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
	"github.com/ots-platform/ibe-mock/internal/store"
)

func (s *Service) searchCurrency(searchParams map[string]any) string {
	if c, ok := searchParams["currency"].(string); ok && c != "" {
		return c
	}
	return s.currency
}

func searchParamsOf(body map[string]any) map[string]any {
	if p, ok := asMap(body["searchParams"]); ok {
		return p
	}
	return map[string]any{}
}

// searchResponse assembles the payload shared by every search-shaped reply.
func searchResponse(view map[string]any, fs *model.FlightsSearch) map[string]any {
	var search any
	if fs != nil {
		search = fs
	}
	return map[string]any{
		"retrieve":         map[string]any{"shoppingCart": true, "ancillariesPricing": false},
		"shoppingCart":     view,
		"search":           search,
		"forwardingParams": map[string]any{},
		"deeplinkStep":     nil,
		"redirectUrl":      nil,
	}
}

// Search handles a fresh flight search with no order context. The same
// search in the same conversation always resolves to the same order, cart
// and air.
func (s *Service) Search(rc *reqctx.Context, body map[string]any) (map[string]any, []model.Warning) {
	searchParams := searchParamsOf(body)
	currency := s.searchCurrency(searchParams)
	key := catalog.SearchKey(rc.ConversationID, rc.Flow, searchParams)

	bundle, ok := s.store.SearchBundle(rc, key)
	if !ok {
		bundle = store.Bundle{
			OrderID:        ids.StableID("order", key, 16),
			ShoppingCartID: ids.StableID("cart", key, 16),
			AirID:          ids.StableID("air", key, 16),
		}
		s.store.EnsureSearchBundle(rc, key, bundle)
	}
	s.store.EnsureOrder(bundle.OrderID, rc)
	s.store.EnsureShoppingCart(bundle.OrderID, bundle.ShoppingCartID)
	s.store.EnsureAir(bundle.OrderID, bundle.ShoppingCartID, bundle.AirID)
	s.store.LinkAir(rc, bundle.OrderID, bundle.ShoppingCartID, bundle.AirID)

	fs := s.persistSearch(bundle.OrderID, bundle.ShoppingCartID, bundle.AirID, searchParams, key, currency)

	view := BuildCartView(bundle.OrderID, bundle.ShoppingCartID, bundle.AirID, currency, model.StepFlightsSearch, model.NewPricing(0, currency))
	payload := searchResponse(view, fs)
	s.mock(payload, map[string]any{
		"kind":      "FlightsSearchResponse",
		"searchKey": key,
		"ids":       ids3(bundle.OrderID, bundle.ShoppingCartID, bundle.AirID),
	})
	return payload, nil
}

// SearchWithCart handles a search scoped to an existing order and cart. The
// cart stays stable; the air id is derived from the search itself.
func (s *Service) SearchWithCart(rc *reqctx.Context, orderID, cartID string, body map[string]any) (map[string]any, []model.Warning) {
	searchParams := searchParamsOf(body)
	currency := s.searchCurrency(searchParams)
	key := catalog.SearchKey(rc.ConversationID, rc.Flow, searchParams)
	airID := ids.StableID("air", key, 16)

	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)
	s.store.EnsureAir(orderID, cartID, airID)
	s.store.LinkAir(rc, orderID, cartID, airID)

	fs := s.persistSearch(orderID, cartID, airID, searchParams, key, currency)

	view := BuildCartView(orderID, cartID, airID, currency, model.StepFlightsSearch, model.NewPricing(0, currency))
	payload := searchResponse(view, fs)
	s.mock(payload, map[string]any{
		"kind":      "FlightsSearchResponse",
		"searchKey": key,
		"ids":       ids3(orderID, cartID, airID),
	})
	return payload, nil
}

// persistSearch stores a freshly built search on the cart and its segment
// refs on the air, both under the store lock. It returns a deep copy for
// rendering so the response cannot race a later selection against the
// stored tree.
func (s *Service) persistSearch(orderID, cartID, airID string, searchParams map[string]any, key, currency string) *model.FlightsSearch {
	fs := catalog.BuildSearch(searchParams, key, currency)
	refs := catalog.SegmentRefs(fs)
	fsView := fs.Clone()

	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.FlightsSearch = fs
		cart.Step = model.StepFlightsSearch
		cart.SelectionConfirmed = false
	})
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		air.Segments = refs
	})
	return fsView
}

// SearchContext returns the last stored search for a cart, if any.
func (s *Service) SearchContext(rc *reqctx.Context, orderID, cartID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)
	airID := s.store.ResolveAir(rc, orderID, cartID)

	var (
		fsView   *model.FlightsSearch
		step     = model.StepFlightsSearch
		currency = s.currency
		pricing  model.Pricing
	)
	s.store.ViewShoppingCart(cartID, func(cart *model.ShoppingCart) {
		step = cart.Step
		if cart.FlightsSearch != nil {
			currency = s.searchCurrency(cart.FlightsSearch.SearchParams)
			fsView = cart.FlightsSearch.Clone()
		}
		pricing = model.NewPricing(0, currency)
		if cart.Pricing != nil {
			pricing = *cart.Pricing
		}
	})

	view := BuildCartView(orderID, cartID, airID, currency, step, pricing)
	payload := searchResponse(view, fsView)

	var warnings []model.Warning
	if fsView == nil {
		warnings = append(warnings, model.NewWarning(model.WarnNoSearchContext,
			"No flights search context found in the cart.",
			map[string]any{"orderId": orderID, "shoppingCartId": cartID}))
	}
	s.mock(payload, map[string]any{
		"kind":      "FlightsSearchGet",
		"ids":       ids3(orderID, cartID, airID),
		"hasSearch": fsView != nil,
	})
	return payload, warnings
}

func markSelected(set *model.OptionSet, optionID, solutionID string) {
	for _, opt := range set.Options {
		opt.UserSelected = opt.ID == optionID
		for sid, sol := range opt.Solutions {
			sol.Preselected = sid == solutionID
		}
	}
}

// SelectSolution records the chosen option/solution for one option set and
// reprices the cart. Unknown ids are reported as warnings and leave the
// stored selection untouched.
func (s *Service) SelectSolution(rc *reqctx.Context, orderID, cartID, optionSetID, optionID, solutionID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)

	var (
		fsView *model.FlightsSearch
		warn   []model.Warning
	)
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		fs := cart.FlightsSearch
		if fs == nil {
			warn = []model.Warning{model.NewWarning(model.WarnNoSearchContext,
				"No flights search context found in the cart; selection ignored.",
				map[string]any{"orderId": orderID, "shoppingCartId": cartID})}
			return
		}
		set := fs.FindOptionSet(optionSetID)
		if set == nil {
			warn = []model.Warning{model.NewWarning(model.WarnOptionSetNotFound,
				"Option set not found in the current search; selection ignored.",
				map[string]any{"optionSetId": optionSetID})}
			return
		}
		opt := set.FindOption(optionID)
		if opt == nil {
			warn = []model.Warning{model.NewWarning(model.WarnOptionNotFound,
				"Option not found in the option set; selection ignored.",
				map[string]any{"optionSetId": optionSetID, "optionId": optionID})}
			return
		}

		set.Selection = &model.Selection{OptionID: optionID, SolutionID: solutionID}
		set.OptionID = optionID
		set.SolutionID = solutionID
		markSelected(set, optionID, solutionID)
		cart.Step = model.StepFlightsSelection
		fsView = fs.Clone()
	})
	if warn != nil {
		return map[string]any{}, warn
	}

	airID := s.store.ResolveAir(rc, orderID, cartID)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		air.Ancillaries.FlightsSelection = &model.FlightsSelection{
			OptionSetID: optionSetID,
			OptionID:    optionID,
			SolutionID:  solutionID,
		}
	})
	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, model.StepFlightsSelection, p)
	attachSelectedRoutes(view, fsView)
	payload := searchResponse(view, fsView)
	s.mock(payload, map[string]any{
		"kind": "FlightsSelection",
		"ids":  ids3(orderID, cartID, airID),
		"selection": map[string]any{
			"optionSetId": optionSetID,
			"optionId":    optionID,
			"solutionId":  solutionID,
		},
		"total": p.Total.Price,
	})
	return payload, nil
}

// Deselect resets every option set back to its cheapest option and solution.
func (s *Service) Deselect(rc *reqctx.Context, orderID, cartID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)

	var (
		fsView *model.FlightsSearch
		warn   []model.Warning
	)
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		fs := cart.FlightsSearch
		if fs == nil {
			warn = []model.Warning{model.NewWarning(model.WarnNoSearchContext,
				"No search context to reset.", nil)}
			return
		}
		for _, set := range fs.OptionSets {
			optionID := set.CheapestOptionID
			if optionID == "" && len(set.Options) > 0 {
				optionID = set.Options[0].ID
			}
			opt := set.FindOption(optionID)
			if opt == nil {
				continue
			}
			solutionID := opt.CheapestSolutionID
			if solutionID == "" {
				solutionID = set.SolutionID
			}
			set.Selection = &model.Selection{OptionID: optionID, SolutionID: solutionID}
			set.OptionID = optionID
			set.SolutionID = solutionID
			markSelected(set, optionID, solutionID)
		}
		cart.SelectionConfirmed = false
		cart.Step = model.StepFlightsSearch
		fsView = fs.Clone()
	})
	if warn != nil {
		return map[string]any{}, warn
	}

	airID := s.store.ResolveAir(rc, orderID, cartID)
	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, model.StepFlightsSearch, p)
	payload := map[string]any{"shoppingCart": view, "search": fsView}
	s.mock(payload, map[string]any{"kind": "FlightsDeselect", "ids": ids3(orderID, cartID, airID)})
	return payload, nil
}

// Confirm marks the current selection confirmed (or unconfirmed) and moves
// the cart to the matching step. The total does not change.
func (s *Service) Confirm(rc *reqctx.Context, orderID, cartID string, confirmed bool) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)

	step := model.StepFlightsSelection
	if confirmed {
		step = model.StepAncillaries
	}
	var fsView *model.FlightsSearch
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.SelectionConfirmed = confirmed
		cart.Step = step
		fsView = cart.FlightsSearch.Clone()
	})

	airID := s.store.ResolveAir(rc, orderID, cartID)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		if air.Ancillaries.FlightsSelection == nil {
			air.Ancillaries.FlightsSelection = &model.FlightsSelection{}
		}
		air.Ancillaries.FlightsSelection.Confirmed = confirmed
	})

	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, step, p)
	attachSelectedRoutes(view, fsView)
	payload := map[string]any{"shoppingCart": view}
	s.mock(payload, map[string]any{
		"kind":      "FlightsSelectionConfirmation",
		"confirmed": confirmed,
		"ids":       ids3(orderID, cartID, airID),
		"total":     p.Total.Price,
	})
	return payload, nil
}
