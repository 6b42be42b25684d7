package model

// Canonical ancillary selection records. Request payload aliases are
// resolved into these types in exactly one place (services normalization);
// the store only ever holds validated records.

// SeatSelection assigns a physical seat to a passenger on a segment.
type SeatSelection struct {
	PassengerID           string `json:"passengerId"`
	SegmentID             string `json:"segmentId"`
	RowNumber             string `json:"rowNumber"`
	SeatNumber            string `json:"seatNumber"`
	PriorityMember        *bool  `json:"priorityMember,omitempty"`
	PriorityClassicMember *bool  `json:"priorityClassicMember,omitempty"`
	SpecialAssistance     *bool  `json:"specialAssistance,omitempty"`
	Redemption            *bool  `json:"redemption,omitempty"`
	UsePoints             *bool  `json:"usePoints,omitempty"`
	SmiFree               *bool  `json:"smiFree,omitempty"`
}

// Seat returns the physical seat key within a segment, e.g. "12A".
func (s SeatSelection) Seat() string {
	return s.RowNumber + s.SeatNumber
}

// BaggageSelection holds the bag ids requested for a passenger on a route.
type BaggageSelection struct {
	PassengerID string   `json:"passengerId"`
	RouteID     string   `json:"routeId"`
	BaggageIDs  []string `json:"baggageIds"`
}

// BagItem is a priced bag derived from a BaggageSelection.
type BagItem struct {
	ID          string  `json:"id"`
	PassengerID string  `json:"passengerId"`
	RouteID     string  `json:"routeId"`
	BaggageID   string  `json:"baggageId"`
	Discounted  bool    `json:"discounted"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	CreatedAt   string  `json:"createdAt"`
}

// BaggagePricing is a display summary of the priced bag items.
type BaggagePricing struct {
	Currency string     `json:"currency"`
	Items    []BagItem  `json:"items"`
	Total    PlainPrice `json:"total"`
}

// MealSelection picks a catalog meal/drink for a passenger on a segment.
type MealSelection struct {
	PassengerID string `json:"passengerId"`
	SegmentID   string `json:"segmentId"`
	MealID      string `json:"mealId"`
	MealSubcode string `json:"mealSubcode,omitempty"`
	SameMeal    *bool  `json:"sameMeal,omitempty"`
	Redemption  *bool  `json:"redemption,omitempty"`
}

// MealItem is a priced meal/drink derived from a MealSelection.
type MealItem struct {
	ID          string  `json:"id"`
	PassengerID string  `json:"passengerId"`
	SegmentID   string  `json:"segmentId"`
	MealID      string  `json:"mealId"`
	MealSubcode string  `json:"mealSubcode,omitempty"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Pricing     Pricing `json:"pricing"`
}

// MealDetails carries localized display data for a catalog entry.
type MealDetails struct {
	Category             string            `json:"category"`
	SubCategory          string            `json:"subCategory"`
	LocalizedTitles      map[string]string `json:"localizedTitles"`
	LocalizedCategory    map[string]string `json:"localizedCategory"`
	LocalizedSubCategory map[string]string `json:"localizedSubCategory"`
}

// MealOption is one entry of the meal/drink catalog.
type MealOption struct {
	ID          string      `json:"id"`
	Subcode     string      `json:"subcode"`
	Paid        bool        `json:"paid"`
	Pricing     Pricing     `json:"pricing"`
	MealDetails MealDetails `json:"mealDetails"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
}

// FlightsSelection marks the chosen option/solution on an air and whether
// the user confirmed it.
type FlightsSelection struct {
	Confirmed   bool   `json:"confirmed"`
	OptionSetID string `json:"optionSetId,omitempty"`
	OptionID    string `json:"optionId,omitempty"`
	SolutionID  string `json:"solutionId,omitempty"`
}

// Ancillaries is the per-air container for every ancillary category.
// Entries are validated before they are written here; malformed input is
// dropped upstream with a warning.
type Ancillaries struct {
	SeatSelections    []SeatSelection    `json:"seatSelections,omitempty"`
	BaggageSelections []BaggageSelection `json:"baggageSelections,omitempty"`
	BaggageItems      []BagItem          `json:"baggageItems,omitempty"`
	BaggagePricing    *BaggagePricing    `json:"baggagePricing,omitempty"`
	MealOptions       []MealOption       `json:"mealOptions,omitempty"`
	MealSelections    []MealSelection    `json:"mealSelections,omitempty"`
	MealItems         []MealItem         `json:"mealItems,omitempty"`
	FlightsSelection  *FlightsSelection  `json:"flightsSelection,omitempty"`
}
