// Package services implements the booking flows on top of the entity store:
// flight search and selection, seats, bags, meals, booking, and the shared
// cart view every endpoint renders. Handlers stay thin; all domain rules
// live here.
package services

import "github.com/ots-platform/ibe-mock/internal/model"

// Request payload normalization. Clients send ancillary selections under
// several historical aliases; each helper resolves every alias into the
// canonical model type in one place, so the merge logic below never sees a
// raw payload.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolPtr(m map[string]any, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

// NormalizeSeatSelections accepts seatSelections as a list or a single
// object. Entries are passed through untrimmed; validation happens in the
// merge.
func NormalizeSeatSelections(body map[string]any) []model.SeatSelection {
	raw := body["seatSelections"]
	items := asList(raw)
	if items == nil {
		if single, ok := asMap(raw); ok {
			items = []any{single}
		}
	}
	var out []model.SeatSelection
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		out = append(out, model.SeatSelection{
			PassengerID:           str(m, "passengerId"),
			SegmentID:             str(m, "segmentId"),
			RowNumber:             str(m, "rowNumber"),
			SeatNumber:            str(m, "seatNumber"),
			PriorityMember:        boolPtr(m, "priorityMember"),
			PriorityClassicMember: boolPtr(m, "priorityClassicMember"),
			SpecialAssistance:     boolPtr(m, "specialAssistance"),
			Redemption:            boolPtr(m, "redemption"),
			UsePoints:             boolPtr(m, "usePoints"),
			SmiFree:               boolPtr(m, "smiFree"),
		})
	}
	return out
}

// NormalizeBaggageSelections reads baggageSelections, tolerating segmentId
// as an alias for routeId and coercing baggageIds into strings.
func NormalizeBaggageSelections(body map[string]any) []model.BaggageSelection {
	var out []model.BaggageSelection
	for _, it := range asList(body["baggageSelections"]) {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		routeID := str(m, "routeId")
		if routeID == "" {
			routeID = str(m, "segmentId")
		}
		var ids []string
		for _, id := range asList(m["baggageIds"]) {
			if s, ok := id.(string); ok && s != "" {
				ids = append(ids, s)
			}
		}
		out = append(out, model.BaggageSelection{
			PassengerID: str(m, "passengerId"),
			RouteID:     routeID,
			BaggageIDs:  ids,
		})
	}
	return out
}

// NormalizeMealSelections accepts mealSelection (single object),
// mealSelections and mealsSelections, and tolerates routeId as an alias for
// segmentId.
func NormalizeMealSelections(body map[string]any) []model.MealSelection {
	var items []any
	if single, ok := asMap(body["mealSelection"]); ok {
		items = append(items, single)
	}
	items = append(items, asList(body["mealSelections"])...)
	items = append(items, asList(body["mealsSelections"])...)

	var out []model.MealSelection
	for _, it := range items {
		m, ok := asMap(it)
		if !ok {
			continue
		}
		segmentID := str(m, "segmentId")
		if segmentID == "" {
			segmentID = str(m, "routeId")
		}
		out = append(out, model.MealSelection{
			PassengerID: str(m, "passengerId"),
			SegmentID:   segmentID,
			MealID:      str(m, "mealId"),
			MealSubcode: str(m, "mealSubcode"),
			SameMeal:    boolPtr(m, "sameMeal"),
			Redemption:  boolPtr(m, "redemption"),
		})
	}
	return out
}
