package services

import (
	"strconv"
	"strings"

	"github.com/ots-platform/ibe-mock/internal/catalog"
	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
)

func trimSeat(sel model.SeatSelection) model.SeatSelection {
	sel.PassengerID = strings.TrimSpace(sel.PassengerID)
	sel.SegmentID = strings.TrimSpace(sel.SegmentID)
	sel.RowNumber = strings.TrimSpace(sel.RowNumber)
	sel.SeatNumber = strings.ToUpper(strings.TrimSpace(sel.SeatNumber))
	return sel
}

// mergeSeats applies incoming selections to the existing list. One seat per
// (passenger, segment); one passenger per physical seat. A passenger taking
// a seat held by someone else evicts the other assignment with a warning.
func mergeSeats(existing, incoming []model.SeatSelection) ([]model.SeatSelection, []model.Warning) {
	var warnings []model.Warning
	merged := make([]model.SeatSelection, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)

	for _, raw := range incoming {
		sel := trimSeat(raw)
		if sel.PassengerID == "" || sel.SegmentID == "" || sel.RowNumber == "" || sel.SeatNumber == "" {
			warnings = append(warnings, model.NewWarning(model.WarnSeatSelectionInvalid,
				"Seat selection entry is missing required fields; ignored.",
				map[string]any{
					"passengerId": sel.PassengerID,
					"segmentId":   sel.SegmentID,
					"rowNumber":   sel.RowNumber,
					"seatNumber":  sel.SeatNumber,
				}))
			continue
		}

		kept := merged[:0]
		replaced := false
		for _, c := range merged {
			if c.PassengerID == sel.PassengerID && c.SegmentID == sel.SegmentID {
				kept = append(kept, sel)
				replaced = true
				continue
			}
			if c.SegmentID == sel.SegmentID && c.Seat() == sel.Seat() {
				warnings = append(warnings, model.NewWarning(model.WarnSeatReassigned,
					"Seat was previously assigned to another passenger; assignment moved.",
					map[string]any{
						"segmentId":       sel.SegmentID,
						"seat":            sel.Seat(),
						"fromPassengerId": c.PassengerID,
						"toPassengerId":   sel.PassengerID,
					}))
				continue
			}
			kept = append(kept, c)
		}
		merged = kept
		if !replaced {
			merged = append(merged, sel)
		}
	}
	return merged, warnings
}

// UpdateSeats merges the request's seat selections into the air and
// reprices. Shared by the plain and the ancillaries-wrapped endpoints.
func (s *Service) UpdateSeats(rc *reqctx.Context, orderID, cartID, airID string, body map[string]any) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	incoming := NormalizeSeatSelections(body)
	var (
		merged   []model.SeatSelection
		warnings []model.Warning
	)
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		merged, warnings = mergeSeats(air.Ancillaries.SeatSelections, incoming)
		air.Ancillaries.SeatSelections = merged
	})

	payload := s.seatsCartPayload(rc, orderID, cartID, airID, merged)
	s.mock(payload, map[string]any{
		"kind":       "SeatSelection",
		"ids":        ids3(orderID, cartID, airID),
		"seatsCount": len(merged),
	})
	return payload, warnings
}

// DeleteSeats clears seat selections, optionally only for one segment.
func (s *Service) DeleteSeats(rc *reqctx.Context, orderID, cartID, airID, segmentID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)

	segmentID = strings.TrimSpace(segmentID)
	kept := []model.SeatSelection{}
	s.store.UpdateAir(orderID, cartID, airID, func(air *model.Air) {
		if segmentID != "" {
			for _, sel := range air.Ancillaries.SeatSelections {
				if sel.SegmentID != segmentID {
					kept = append(kept, sel)
				}
			}
		}
		air.Ancillaries.SeatSelections = kept
	})

	var seg any
	if segmentID != "" {
		seg = segmentID
	}
	warnings := []model.Warning{model.NewWarning(model.WarnSeatsCleared,
		"Seat selections were cleared.",
		map[string]any{"segmentId": seg, "airId": airID})}

	payload := s.seatsCartPayload(rc, orderID, cartID, airID, kept)
	s.mock(payload, map[string]any{
		"kind":       "SeatSelection",
		"ids":        ids3(orderID, cartID, airID),
		"seatsCount": len(kept),
	})
	return payload, warnings
}

func (s *Service) seatsCartPayload(rc *reqctx.Context, orderID, cartID, airID string, selections []model.SeatSelection) map[string]any {
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.Step = model.StepSeats
	})
	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, model.StepSeats, p)
	AttachAncillary(view, "seatSelections", selections)
	return map[string]any{
		"retrieve":     map[string]any{"shoppingCart": true, "ancillariesPricing": true},
		"shoppingCart": view,
	}
}

var preselectColumns = []string{"A", "B", "C", "D", "F", "G", "H", "J", "K"}

// autoAssignSeat maps a stable hash of the seed into the economy seat space
// and probes forward past already-used seats.
func autoAssignSeat(seed string, used map[string]bool) (string, string) {
	const startRow = 20
	hexPart := strings.SplitN(ids.StableID("s", seed, 8), "-", 2)[1]
	n, _ := strconv.ParseUint(hexPart, 16, 64)

	row := startRow + int(n%30)
	col := preselectColumns[n%uint64(len(preselectColumns))]
	for i := 0; i < 200; i++ {
		key := strconv.Itoa(row) + col
		if !used[key] {
			used[key] = true
			return strconv.Itoa(row), col
		}
		n++
		row = startRow + int(n%30)
		col = preselectColumns[n%uint64(len(preselectColumns))]
	}
	used[strconv.Itoa(row)+col] = true
	return strconv.Itoa(row), col
}

// PreselectSeats deterministically suggests a free seat per requested
// passenger/segment pair. Nothing is persisted.
func (s *Service) PreselectSeats(rc *reqctx.Context, body map[string]any) (map[string]any, []model.Warning) {
	used := map[string]bool{}
	out := []model.SeatSelection{}
	for idx, raw := range NormalizeSeatSelections(body) {
		sel := trimSeat(raw)
		if sel.PassengerID == "" || sel.SegmentID == "" {
			continue
		}
		seed := rc.ConversationID + "|" + sel.SegmentID + "|" + sel.PassengerID + "|" + strconv.Itoa(idx)
		sel.RowNumber, sel.SeatNumber = autoAssignSeat(seed, used)
		out = append(out, sel)
	}
	payload := map[string]any{"seatSelections": out}
	s.mock(payload, map[string]any{"kind": "SeatsPreselect", "count": len(out)})
	return payload, nil
}

// SpecialAssistanceSeats reports the current seat selections without
// changing them, in the shape the assistance flow expects.
func (s *Service) SpecialAssistanceSeats(rc *reqctx.Context, orderID, cartID, airID string) (map[string]any, []model.Warning) {
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)
	s.store.EnsureAir(orderID, cartID, airID)

	selections := []model.SeatSelection{}
	s.store.UpdateShoppingCart(orderID, cartID, func(cart *model.ShoppingCart) {
		cart.Step = model.StepSeats
	})
	s.store.ViewAir(airID, func(air *model.Air) {
		if air.Ancillaries.SeatSelections != nil {
			selections = air.Ancillaries.SeatSelections
		}
	})
	p := s.engine.Reprice(orderID, cartID, airID)

	view := BuildCartView(orderID, cartID, airID, p.Total.Price.Currency, model.StepSeats, p)
	AttachAncillary(view, "seatSelections", selections)
	payload := map[string]any{
		"retrieve":        map[string]any{"shoppingCart": true, "ancillariesPricing": true},
		"shoppingCart":    view,
		"seatsSelections": selections,
	}
	s.mock(payload, map[string]any{"kind": "SpecialAssistanceSeatsUpdate", "count": len(selections)})
	return payload, nil
}

// Cabins renders the seat map for one of the air's segments. The segment id
// may be empty, meaning the first known segment.
func (s *Service) Cabins(rc *reqctx.Context, orderID, cartID, airID, segmentID string) (map[string]any, []model.Warning) {
	if cartID == "" {
		cartID = orderID
	}
	if orderID == "" {
		orderID = cartID
	}
	s.store.EnsureOrder(orderID, rc)
	s.store.EnsureShoppingCart(orderID, cartID)
	s.store.EnsureAir(orderID, cartID, airID)

	seg := model.SegmentRef{ID: segmentID}
	var selections []model.SeatSelection
	s.store.ViewAir(airID, func(air *model.Air) {
		if segmentID == "" && len(air.Segments) > 0 {
			seg = air.Segments[0]
		} else {
			for _, ref := range air.Segments {
				if ref.ID == segmentID {
					seg = ref
					break
				}
			}
		}
		selections = air.Ancillaries.SeatSelections
	})
	if seg.ID == "" {
		seg.ID = ids.StableID("seg", rc.ConversationID+"|"+airID, 16)
	}

	currency := s.currency
	s.store.ViewShoppingCart(cartID, func(cart *model.ShoppingCart) {
		if cart.Pricing != nil {
			currency = cart.Pricing.Total.Price.Currency
		}
	})

	resp := catalog.BuildCabins(seg, currency, selections)
	payload := map[string]any{
		"cabins":               resp.Cabins,
		"selectPriorityMember": resp.SelectPriorityMember,
	}
	s.mock(payload, map[string]any{"kind": "CabinsSearch", "segmentId": seg.ID})
	return payload, nil
}
