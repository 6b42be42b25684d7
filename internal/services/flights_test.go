package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ots-platform/ibe-mock/internal/model"
)

func searchBody(params map[string]any) map[string]any {
	return map[string]any{"searchParams": params}
}

func firstSet(payload map[string]any) *model.OptionSet {
	fs, _ := payload["search"].(*model.FlightsSearch)
	if fs == nil || len(fs.OptionSets) == 0 {
		return nil
	}
	return fs.OptionSets[0]
}

func TestSearchIsIdempotentPerConversation(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	a, _ := svc.Search(rc, searchBody(map[string]any{}))
	b, _ := svc.Search(rc, searchBody(map[string]any{}))

	cartA, cartB := cartOf(a), cartOf(b)
	assert.Equal(t, cartA["id"], cartB["id"])
	assert.Equal(t, firstSet(a).ID, firstSet(b).ID)
}

func TestSearchDifferentRoutesDifferentBundle(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	a, _ := svc.Search(rc, searchBody(map[string]any{}))
	b, _ := svc.Search(rc, searchBody(map[string]any{
		"routes": []any{map[string]any{"origin": "LIS", "destination": "MAD"}},
	}))
	assert.NotEqual(t, cartOf(a)["id"], cartOf(b)["id"])
}

func TestSearchPersistsContextOnCart(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	payload, _ := svc.Search(rc, searchBody(map[string]any{"currency": "EUR"}))
	cartID, _ := cartOf(payload)["id"].(string)
	require.NotEmpty(t, cartID)

	cart, ok := st.ShoppingCart(cartID)
	require.True(t, ok)
	require.NotNil(t, cart.FlightsSearch)
	assert.Len(t, cart.FlightsSearch.OptionSets, 1)
	assert.Equal(t, model.StepFlightsSearch, cart.Step)

	order, ok := st.Order(cart.OrderID)
	require.True(t, ok)
	require.NotEmpty(t, order.AddedAirID)
	air, ok := st.Air(order.AddedAirID)
	require.True(t, ok)
	assert.Len(t, air.Segments, 4)
}

func TestSearchWithCartKeepsCartID(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	payload, _ := svc.SearchWithCart(rc, "order-x", "cart-x", searchBody(map[string]any{}))
	assert.Equal(t, "cart-x", cartOf(payload)["id"])

	cart, ok := st.ShoppingCart("cart-x")
	require.True(t, ok)
	require.NotNil(t, cart.FlightsSearch)

	order, _ := st.Order("order-x")
	assert.NotEmpty(t, order.AddedAirID)
}

func TestSearchContextWithoutSearchWarns(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	payload, warnings := svc.SearchContext(rc, "o-empty", "c-empty")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnNoSearchContext, warnings[0].Code)
	assert.Nil(t, payload["search"])
}

func TestSearchContextReturnsStoredSearch(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))
	payload, warnings := svc.SearchContext(rc, "o1", "c1")
	assert.Empty(t, warnings)
	assert.NotNil(t, payload["search"])
}

func TestSelectSolutionUpdatesSelectionAndPrice(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	payload, _ := svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))
	set := firstSet(payload)
	require.NotNil(t, set)

	fast := set.Options[1]
	var flexID string
	for sid, sol := range fast.Solutions {
		if sol.FareFamily == "ECONOMYFLEX" {
			flexID = sid
		}
	}
	require.NotEmpty(t, flexID)

	out, warnings := svc.SelectSolution(rc, "o1", "c1", set.ID, fast.ID, flexID)
	assert.Empty(t, warnings)

	// The response carries a snapshot; the stored tree holds the selection.
	cart, _ := st.ShoppingCart("c1")
	stored := cart.FlightsSearch.FindOptionSet(set.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.FindOption(fast.ID).UserSelected)
	assert.False(t, stored.Options[0].UserSelected)
	assert.Equal(t, fast.ID, stored.OptionID)
	assert.Equal(t, flexID, stored.SolutionID)

	require.NotNil(t, cart.Pricing)
	assert.Equal(t, fast.Solutions[flexID].Pricing.Total.Price.Amount, cart.Pricing.Total.Price.Amount)
	assert.Equal(t, model.StepFlightsSelection, cart.Step)

	order, _ := st.Order("o1")
	air, ok := st.Air(order.AddedAirID)
	require.True(t, ok)
	require.NotNil(t, air.Ancillaries.FlightsSelection)
	assert.False(t, air.Ancillaries.FlightsSelection.Confirmed)
	assert.Equal(t, flexID, air.Ancillaries.FlightsSelection.SolutionID)

	view := cartOf(out)
	assert.Equal(t, model.StepFlightsSelection, view["step"])
}

func TestSelectSolutionUnknownIDs(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	_, warnings := svc.SelectSolution(rc, "o-none", "c-none", "set", "opt", "sol")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnNoSearchContext, warnings[0].Code)

	payload, _ := svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))
	set := firstSet(payload)

	_, warnings = svc.SelectSolution(rc, "o1", "c1", "missing-set", "opt", "sol")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnOptionSetNotFound, warnings[0].Code)

	_, warnings = svc.SelectSolution(rc, "o1", "c1", set.ID, "missing-opt", "sol")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnOptionNotFound, warnings[0].Code)
}

func TestDeselectResetsToCheapest(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	payload, _ := svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))
	set := firstSet(payload)
	fast := set.Options[1]
	svc.SelectSolution(rc, "o1", "c1", set.ID, fast.ID, fast.CheapestSolutionID)

	out, warnings := svc.Deselect(rc, "o1", "c1")
	assert.Empty(t, warnings)

	cart, _ := st.ShoppingCart("c1")
	stored := cart.FlightsSearch.FindOptionSet(set.ID)
	require.NotNil(t, stored)
	assert.Equal(t, stored.CheapestOptionID, stored.OptionID)
	cheap := stored.FindOption(stored.CheapestOptionID)
	assert.Equal(t, cheap.CheapestSolutionID, stored.SolutionID)
	assert.True(t, cheap.UserSelected)
	assert.False(t, stored.FindOption(fast.ID).UserSelected)

	assert.False(t, cart.SelectionConfirmed)
	assert.Equal(t, model.StepFlightsSearch, cart.Step)
	require.NotNil(t, cart.Pricing)
	assert.Equal(t, cheap.Solutions[cheap.CheapestSolutionID].Pricing.Total.Price.Amount,
		cart.Pricing.Total.Price.Amount)
	assert.Equal(t, model.StepFlightsSearch, cartOf(out)["step"])
}

func TestDeselectWithoutSearchWarns(t *testing.T) {
	svc, _ := newTestService()
	rc := testContext()

	_, warnings := svc.Deselect(rc, "o-none", "c-none")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnNoSearchContext, warnings[0].Code)
}

func TestConfirmationTogglesConfirmedAndStep(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))

	out, warnings := svc.Confirm(rc, "o1", "c1", true)
	assert.Empty(t, warnings)
	cart, _ := st.ShoppingCart("c1")
	assert.True(t, cart.SelectionConfirmed)
	assert.Equal(t, model.StepAncillaries, cart.Step)
	assert.Equal(t, model.StepAncillaries, cartOf(out)["step"])

	order, _ := st.Order("o1")
	air, _ := st.Air(order.AddedAirID)
	require.NotNil(t, air.Ancillaries.FlightsSelection)
	assert.True(t, air.Ancillaries.FlightsSelection.Confirmed)

	before := cart.Pricing.Total.Price.Amount
	out, _ = svc.Confirm(rc, "o1", "c1", false)
	cart, _ = st.ShoppingCart("c1")
	assert.False(t, cart.SelectionConfirmed)
	assert.Equal(t, model.StepFlightsSelection, cart.Step)
	assert.False(t, air.Ancillaries.FlightsSelection.Confirmed)
	assert.Equal(t, before, cart.Pricing.Total.Price.Amount, "confirmation does not change the total")
	assert.Equal(t, model.StepFlightsSelection, cartOf(out)["step"])
}
