package services

import (
	"sort"
	"strings"

	"github.com/ots-platform/ibe-mock/internal/catalog"
	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

// mergeMeals replaces the selection for each incoming (passenger, segment)
// pair and keeps the rest, sorted by segment then passenger.
func mergeMeals(existing, incoming []model.MealSelection) ([]model.MealSelection, []model.Warning) {
	var warnings []model.Warning
	merged := make([]model.MealSelection, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)

	for _, sel := range incoming {
		sel.PassengerID = strings.TrimSpace(sel.PassengerID)
		sel.SegmentID = strings.TrimSpace(sel.SegmentID)
		sel.MealID = strings.TrimSpace(sel.MealID)
		if sel.PassengerID == "" || sel.SegmentID == "" || sel.MealID == "" {
			warnings = append(warnings, model.NewWarning(model.WarnMealSelectionInvalid,
				"Meal selection entry is missing passengerId/segmentId/mealId; ignored.",
				map[string]any{
					"passengerId": sel.PassengerID,
					"segmentId":   sel.SegmentID,
					"mealId":      sel.MealID,
				}))
			continue
		}

		replaced := false
		for i := range merged {
			if merged[i].PassengerID == sel.PassengerID && merged[i].SegmentID == sel.SegmentID {
				merged[i] = sel
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, sel)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].SegmentID != merged[j].SegmentID {
			return merged[i].SegmentID < merged[j].SegmentID
		}
		return merged[i].PassengerID < merged[j].PassengerID
	})
	return merged, warnings
}

func buildMealItems(rc *reqctx.Context, selections []model.MealSelection, currency string) []model.MealItem {
	items := []model.MealItem{}
	for _, sel := range selections {
		opt := catalog.MealByID(sel.MealID, currency)
		sub := sel.MealSubcode
		if sub == "" {
			sub = opt.Subcode
		}
		seed := rc.ConversationID + "|" + sel.PassengerID + "|" + sel.SegmentID + "|" + sel.MealID + "|" + sub
		items = append(items, model.MealItem{
			ID:          ids.StableID("meal", seed, 14),
			PassengerID: sel.PassengerID,
			SegmentID:   sel.SegmentID,
			MealID:      sel.MealID,
			MealSubcode: sub,
			Category:    opt.Category,
			Name:        opt.Name,
			Pricing:     model.NewPricing(opt.Pricing.Total.Price.Amount, currency),
		})
	}
	return items
}

// UpdateMeals merges the request's meal selections into the air, rebuilds
// the priced meal items from the catalog, and reprices the cart.
func (s *Service) UpdateMeals(rc *reqctx.Context, orderID, cartID, airID string, body map[string]any) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	currency := s.orderCurrency(orderID)
	incoming := NormalizeMealSelections(body)
	mealOptions := catalog.MealOptions(currency)
	var (
		merged   []model.MealSelection
		items    []model.MealItem
		warnings []model.Warning
	)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		merged, warnings = mergeMeals(air.Ancillaries.MealSelections, incoming)
		items = buildMealItems(rc, merged, currency)
		air.Ancillaries.MealSelections = merged
		air.Ancillaries.MealItems = items
		air.Ancillaries.MealOptions = mealOptions
	})

	payload := s.mealsCartPayload(orderID, cartID, airID, mealOptions, merged, items)
	s.mock(payload, map[string]any{
		"kind":       "MealSelection",
		"ids":        ids3(orderID, cartID, airID),
		"mealsCount": len(items),
	})
	return payload, warnings
}

// DeleteMeals clears meal selections, optionally only for one segment.
func (s *Service) DeleteMeals(rc *reqctx.Context, orderID, cartID, airID, segmentID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	segmentID = strings.TrimSpace(segmentID)
	currency := s.orderCurrency(orderID)
	kept := []model.MealSelection{}
	var (
		items       []model.MealItem
		mealOptions []model.MealOption
	)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		if segmentID != "" {
			for _, sel := range air.Ancillaries.MealSelections {
				if sel.SegmentID != segmentID {
					kept = append(kept, sel)
				}
			}
		}
		items = buildMealItems(rc, kept, currency)
		mealOptions = air.Ancillaries.MealOptions
		if len(mealOptions) == 0 {
			mealOptions = catalog.MealOptions(currency)
		}
		air.Ancillaries.MealSelections = kept
		air.Ancillaries.MealItems = items
		air.Ancillaries.MealOptions = mealOptions
	})

	var seg any
	if segmentID != "" {
		seg = segmentID
	}
	warnings := []model.Warning{model.NewWarning(model.WarnMealsCleared,
		"Meal selections were cleared.", map[string]any{"segmentId": seg})}

	payload := s.mealsCartPayload(orderID, cartID, airID, mealOptions, kept, items)
	s.mock(payload, map[string]any{"kind": "MealsDelete", "segmentId": seg})
	return payload, warnings
}

func (s *Service) mealsCartPayload(orderID, cartID, airID string, options []model.MealOption, selections []model.MealSelection, items []model.MealItem) map[string]any {
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.Step = model.StepMeals
	})
	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, model.StepMeals, p)
	AttachAncillary(view, "mealOptions", options)
	AttachAncillary(view, "mealSelections", selections)
	AttachAncillary(view, "mealItems", items)
	return map[string]any{
		"retrieve":       map[string]any{"shoppingCart": true, "ancillariesPricing": true},
		"shoppingCart":   view,
		"mealOptions":    options,
		"mealSelections": selections,
		"mealItems":      items,
	}
}
