package pricing

import (
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/store"
)

// Engine recomputes cart totals from the cart's flight selection and the
// air's stored ancillaries. It never reads request payloads; every mutating
// endpoint writes its selections first and then asks the engine for the
// new total.
type Engine struct {
	store           *store.Store
	defaultCurrency string
}

// NewEngine wires the engine to the entity store.
func NewEngine(s *store.Store, defaultCurrency string) *Engine {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &Engine{store: s, defaultCurrency: defaultCurrency}
}

// FlightsTotal sums the effective solution price of every option set. The
// currency of the last resolved solution wins, starting from the given
// default.
func FlightsTotal(fs *model.FlightsSearch, defaultCurrency string) (float64, string) {
	total, currency := 0.0, defaultCurrency
	if fs == nil {
		return total, currency
	}
	for _, set := range fs.OptionSets {
		optionID, solutionID := set.SelectedIDs()
		opt := set.FindOption(optionID)
		if opt == nil {
			continue
		}
		sol, ok := opt.Solutions[solutionID]
		if !ok || sol == nil {
			continue
		}
		total += sol.Pricing.Total.Price.Amount
		if c := sol.Pricing.Total.Price.Currency; c != "" {
			currency = c
		}
	}
	return total, currency
}

func seatsTotal(anc *model.Ancillaries) float64 {
	total := 0.0
	for _, s := range anc.SeatSelections {
		total += SeatFee(s.RowNumber, s.SeatNumber)
	}
	return total
}

func bagsTotal(anc *model.Ancillaries) float64 {
	total := 0.0
	for _, b := range anc.BaggageItems {
		total += b.Amount
	}
	return total
}

func mealsTotal(anc *model.Ancillaries) float64 {
	total := 0.0
	for _, m := range anc.MealItems {
		total += m.Pricing.Total.Price.Amount
	}
	return total
}

// Reprice recomputes the cart total (flights + seats + bags + meals),
// writes it back to the cart, and propagates the currency to the order. The
// whole read-modify-write runs inside one store lock acquisition so a
// concurrent ancillary update can never interleave between reading the
// selections and writing the total. The air id may be empty when no air
// exists yet. A missing cart leaves the store untouched.
func (e *Engine) Reprice(orderID, cartID, airID string) model.Pricing {
	p := model.NewPricing(0, e.defaultCurrency)
	e.store.UpdateEntities(orderID, cartID, airID, func(order *model.Order, cart *model.ShoppingCart, air *model.Air) {
		if cart == nil {
			return
		}
		total, currency := FlightsTotal(cart.FlightsSearch, e.defaultCurrency)
		if air != nil {
			total += seatsTotal(&air.Ancillaries)
			total += bagsTotal(&air.Ancillaries)
			total += mealsTotal(&air.Ancillaries)
		}
		p = model.NewPricing(total, currency)
		cart.Pricing = &p
		if order != nil {
			order.Currency = currency
		}
	})
	return p
}
