package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
	"github.com/ots-platform/ibe-mock/internal/store"
)

func testContext() *reqctx.Context {
	return &reqctx.Context{
		Application:    "IBE",
		Flow:           "revenue",
		Locale:         "en",
		ConversationID: "conv-pricing",
	}
}

func searchWithSolution(amount float64, currency string) *model.FlightsSearch {
	sol := &model.Solution{
		ID:         "sol-1",
		FareFamily: "ECONOMYLITE",
		Pricing:    model.NewPricing(amount, currency),
	}
	opt := &model.Option{
		ID:                 "opt-1",
		Solutions:          map[string]*model.Solution{"sol-1": sol},
		CheapestSolutionID: "sol-1",
		Available:          true,
	}
	return &model.FlightsSearch{
		OptionSets: []*model.OptionSet{{
			ID:       "set-1",
			Options:  []*model.Option{opt},
			OptionID: "opt-1",
		}},
	}
}

func TestFlightsTotalResolvesCheapestSolution(t *testing.T) {
	total, currency := FlightsTotal(searchWithSolution(150, "EUR"), "USD")
	assert.Equal(t, 150.0, total)
	assert.Equal(t, "EUR", currency)
}

func TestFlightsTotalNilSearch(t *testing.T) {
	total, currency := FlightsTotal(nil, "USD")
	assert.Zero(t, total)
	assert.Equal(t, "USD", currency)
}

func TestFlightsTotalExplicitSelectionWins(t *testing.T) {
	fs := searchWithSolution(150, "EUR")
	set := fs.OptionSets[0]
	set.Options[0].Solutions["sol-2"] = &model.Solution{
		ID:      "sol-2",
		Pricing: model.NewPricing(235, "EUR"),
	}
	set.Selection = &model.Selection{OptionID: "opt-1", SolutionID: "sol-2"}

	total, _ := FlightsTotal(fs, "USD")
	assert.Equal(t, 235.0, total)
}

func TestRepriceSumsAllCategories(t *testing.T) {
	rc := testContext()
	s := store.New()
	s.EnsureOrder("order-1", rc)
	s.EnsureShoppingCart("order-1", "cart-1")
	s.EnsureAir("order-1", "cart-1", "air-1")

	s.UpdateShoppingCart("order-1", "cart-1", func(cart *model.ShoppingCart) {
		cart.FlightsSearch = searchWithSolution(150, "EUR")
	})
	s.UpdateAir("order-1", "cart-1", "air-1", func(air *model.Air) {
		air.Ancillaries.SeatSelections = []model.SeatSelection{
			{PassengerID: "p1", SegmentID: "seg-1", RowNumber: "15", SeatNumber: "D"},
		}
		air.Ancillaries.BaggageItems = []model.BagItem{
			{ID: "bag-a", Amount: BagDiscountedAmount, Discounted: true},
			{ID: "bag-b", Amount: BagRegularAmount},
		}
		air.Ancillaries.MealItems = []model.MealItem{
			{ID: "meal-a", Pricing: model.NewItemPricing(18.0, "EUR")},
		}
	})

	engine := NewEngine(s, "USD")
	p := engine.Reprice("order-1", "cart-1", "air-1")

	// 150 flight + 25 exit-row seat + 15 discounted bag + 30 regular bag + 18 meal.
	assert.Equal(t, 238.0, p.Total.Price.Amount)
	assert.Equal(t, "EUR", p.Total.Price.Currency)

	cart, ok := s.ShoppingCart("cart-1")
	require.True(t, ok)
	require.NotNil(t, cart.Pricing)
	assert.Equal(t, 238.0, cart.Pricing.Total.Price.Amount)

	order, ok := s.Order("order-1")
	require.True(t, ok)
	assert.Equal(t, "EUR", order.Currency)
}

func TestRepriceBumpsRevisions(t *testing.T) {
	rc := testContext()
	s := store.New()
	order, _ := s.EnsureOrder("order-2", rc)
	cart, _ := s.EnsureShoppingCart("order-2", "cart-2")
	s.UpdateShoppingCart("order-2", "cart-2", func(c *model.ShoppingCart) {
		c.FlightsSearch = searchWithSolution(100, "USD")
	})

	cartRev, orderRev := cart.Revision, order.Revision
	NewEngine(s, "USD").Reprice("order-2", "cart-2", "")

	assert.Greater(t, cart.Revision, cartRev)
	assert.Greater(t, order.Revision, orderRev)
}

func TestRepriceRefreshesTimestamps(t *testing.T) {
	rc := testContext()
	s := store.New()
	order, _ := s.EnsureOrder("order-3", rc)
	cart, _ := s.EnsureShoppingCart("order-3", "cart-3")

	cart.UpdatedAt = ""
	order.UpdatedAt = ""
	NewEngine(s, "USD").Reprice("order-3", "cart-3", "")

	assert.NotEmpty(t, cart.UpdatedAt)
	assert.NotEmpty(t, order.UpdatedAt)
}

func TestRepriceMissingCart(t *testing.T) {
	p := NewEngine(store.New(), "USD").Reprice("nope", "nope", "")
	assert.Zero(t, p.Total.Price.Amount)
	assert.Equal(t, "USD", p.Total.Price.Currency)
}
