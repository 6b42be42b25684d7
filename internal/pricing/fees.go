// Package pricing holds the fee tables and the repricing engine that keeps
// a shopping cart's total consistent with its flight selection and
// ancillaries.
package pricing

import "strconv"

// Bag fees. The first bag of a passenger/route pair is discounted.
const (
	BagDiscountedAmount = 15.0
	BagRegularAmount    = 30.0
)

// Per-route cap on the number of bags kept for one passenger.
const BagLimit = 2

// SeatFee returns the surcharge for a physical seat. Business rows are
// free, row 10 sells two extra-legroom window pairs, and the exit rows 15
// and 40 are priced per column with the middle block cheaper than the
// outer columns.
func SeatFee(row, col string) float64 {
	n, err := strconv.Atoi(row)
	if err != nil {
		return 0
	}
	switch {
	case n >= 1 && n <= 9:
		return 0
	case n >= 10 && n <= 14:
		if n == 10 && (col == "D" || col == "F") {
			return 25.0
		}
		return 0
	case n == 15 || n == 40:
		switch col {
		case "D", "F", "G":
			return 25.0
		case "A", "B", "C", "H", "J", "K":
			return 30.0
		}
	}
	return 0
}
