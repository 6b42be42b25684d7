package main

import (
	"fmt"
	"io"
)

// runFlow drives a complete booking against a running mock and prints the
// cart step and total after each stage.
func runFlow(cl *client, out io.Writer) error {
	body, err := cl.doJSON("POST", "/api/v1/flights/search", map[string]any{
		"searchParams": map[string]any{
			"routes": []map[string]any{
				{"origin": "LIS", "destination": "MAD", "departureDate": "2026-02-01"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	cart, _ := body["shoppingCart"].(map[string]any)
	if cart == nil {
		return fmt.Errorf("search response has no shoppingCart")
	}
	cartID, _ := cart["id"].(string)
	order, _ := cart["order"].(map[string]any)
	orderID, _ := order["id"].(string)
	airID, _ := order["addedAirId"].(string)
	if cartID == "" || orderID == "" || airID == "" {
		return fmt.Errorf("search response is missing ids")
	}
	printStage(out, "search", cart)

	setID, optID, solID, segmentID, err := cheapestSelection(body)
	if err != nil {
		return err
	}

	base := fmt.Sprintf("/api/v1/orders/%s/shoppingCarts/%s", orderID, cartID)
	airBase := base + "/airs/" + airID

	stages := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"select", "PUT", fmt.Sprintf("%s/flights/search/optionSets/%s/option/%s/solution/%s", base, setID, optID, solID), nil},
		{"confirm", "POST", base + "/flights/search/selection/confirmation", nil},
		{"seats", "PUT", airBase + "/seats", map[string]any{
			"seatSelections": []map[string]any{
				{"passengerId": "p-1", "segmentId": segmentID, "rowNumber": "15", "seatNumber": "D"},
			},
		}},
		{"bags", "PUT", airBase + "/baggage", map[string]any{
			"baggageSelections": []map[string]any{
				{"passengerId": "p-1", "routeId": "route-1", "baggageIds": []string{"b1", "b2"}},
			},
		}},
		{"meals", "PUT", airBase + "/meals", map[string]any{
			"mealSelections": []map[string]any{
				{"passengerId": "p-1", "segmentId": segmentID, "mealId": "MEAL_GOURMET"},
			},
		}},
		{"book", "POST", base + "/bookings", nil},
	}

	for _, st := range stages {
		body, err = cl.doJSON(st.method, st.path, st.body)
		if err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
		cart, _ = body["shoppingCart"].(map[string]any)
		printStage(out, st.name, cart)
	}
	return nil
}

// cheapestSelection digs the cheapest option's ids out of a search response.
func cheapestSelection(body map[string]any) (setID, optID, solID, segmentID string, err error) {
	search, _ := body["search"].(map[string]any)
	sets, _ := search["optionSets"].([]any)
	if len(sets) == 0 {
		return "", "", "", "", fmt.Errorf("search response has no option sets")
	}
	set, _ := sets[0].(map[string]any)
	setID, _ = set["id"].(string)
	optID, _ = set["cheapestOptionId"].(string)

	opts, _ := set["options"].([]any)
	for _, o := range opts {
		opt, _ := o.(map[string]any)
		if opt["id"] != optID {
			continue
		}
		solID, _ = opt["cheapestSolutionId"].(string)
		routes, _ := opt["routes"].([]any)
		if len(routes) > 0 {
			route, _ := routes[0].(map[string]any)
			segs, _ := route["segments"].([]any)
			if len(segs) > 0 {
				seg, _ := segs[0].(map[string]any)
				segmentID, _ = seg["id"].(string)
			}
		}
	}
	if setID == "" || optID == "" || solID == "" || segmentID == "" {
		return "", "", "", "", fmt.Errorf("search response is missing selection ids")
	}
	return setID, optID, solID, segmentID, nil
}

func printStage(out io.Writer, name string, cart map[string]any) {
	step, total, currency := "?", 0.0, ""
	if cart != nil {
		step, _ = cart["step"].(string)
		if p, ok := cart["pricing"].(map[string]any); ok {
			if t, ok := p["total"].(map[string]any); ok {
				if pr, ok := t["price"].(map[string]any); ok {
					total, _ = pr["amount"].(float64)
					currency, _ = pr["currency"].(string)
				}
			}
		}
	}
	_, _ = fmt.Fprintf(out, "%-8s step=%-18s total=%.2f %s\n", name, step, total, currency)
}
