package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ots-platform/ibe-mock/internal/model"
)

func TestCreateBookingMovesToPayment(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	svc.SearchWithCart(rc, "o1", "c1", searchBody(map[string]any{}))
	svc.Confirm(rc, "o1", "c1", true)
	svc.UpdateBags(rc, "o1", "c1", st.ResolveAir(rc, "o1", "c1"), bagBody(bagEntry("p1", "r1", "b1")))

	cartBefore, _ := st.ShoppingCart("c1")
	priceBefore := cartBefore.Pricing.Total.Price.Amount

	payload, warnings := svc.CreateBooking(rc, "o1", "c1")
	assert.Empty(t, warnings)

	cart, _ := st.ShoppingCart("c1")
	assert.Equal(t, model.StepPayment, cart.Step)

	view := cartOf(payload)
	require.NotNil(t, view)
	assert.Equal(t, model.StepPayment, view["step"])

	pricing, ok := view["pricing"].(model.Pricing)
	require.True(t, ok)
	assert.Equal(t, priceBefore, pricing.Total.Price.Amount, "booking keeps the last computed total")

	bags, ok := view["baggageSelections"].([]model.BaggageSelection)
	require.True(t, ok)
	assert.Len(t, bags, 1)
}

func TestCreateBookingEmptyCart(t *testing.T) {
	svc, st := newTestService()
	rc := testContext()

	payload, warnings := svc.CreateBooking(rc, "o9", "c9")
	assert.Empty(t, warnings)

	view := cartOf(payload)
	pricing := view["pricing"].(model.Pricing)
	assert.Zero(t, pricing.Total.Price.Amount)
	assert.Equal(t, "USD", pricing.Total.Price.Currency)

	cart, ok := st.ShoppingCart("c9")
	require.True(t, ok)
	assert.Equal(t, model.StepPayment, cart.Step)
}
