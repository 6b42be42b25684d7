package model

import "math"

// PlainPrice is an amount in a single currency. No conversion is ever done.
type PlainPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Price wraps a PlainPrice the way the booking API does.
type Price struct {
	Price      PlainPrice `json:"price"`
	Redemption any        `json:"redemption"`
}

// Pricing is the structured price attached to carts, solutions and items.
type Pricing struct {
	Total Price  `json:"total"`
	Base  *Price `json:"base,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewPlainPrice rounds amount to cents.
func NewPlainPrice(amount float64, currency string) PlainPrice {
	return PlainPrice{Amount: round2(amount), Currency: currency}
}

// NewPricing builds a Pricing with just a total.
func NewPricing(amount float64, currency string) Pricing {
	return Pricing{Total: Price{Price: NewPlainPrice(amount, currency)}}
}

// NewItemPricing builds a Pricing with matching base and total, used for
// catalog items where no surcharges apply.
func NewItemPricing(amount float64, currency string) Pricing {
	p := Price{Price: NewPlainPrice(amount, currency)}
	return Pricing{Total: p, Base: &p}
}
