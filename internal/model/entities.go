package model

// Store-owned entities. All are created lazily on first reference and live
// for the process lifetime; nothing is ever deleted.

// Conversation identifies a user session, keyed by the conversation header.
type Conversation struct {
	ConversationID string `json:"conversationId"`
	Application    string `json:"application"`
	Flow           string `json:"flow"`
	Locale         string `json:"locale"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// Order is a purchase-in-progress.
type Order struct {
	OrderID        string `json:"orderId"`
	ConversationID string `json:"conversationId"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	// AddedAirID is a back-reference to the air currently of interest,
	// not an ownership edge.
	AddedAirID string `json:"addedAirId,omitempty"`
	Revision   int    `json:"revision"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ShoppingCart is the checkout basket for one order.
type ShoppingCart struct {
	ShoppingCartID string `json:"shoppingCartId"`
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	Step           string `json:"step"`
	// SelectedAirs keeps insertion order and never holds duplicates.
	SelectedAirs       []string       `json:"selectedAirs"`
	Pricing            *Pricing       `json:"pricing,omitempty"`
	FlightsSearch      *FlightsSearch `json:"flightsSearch,omitempty"`
	SelectionConfirmed bool           `json:"selectionConfirmed"`
	Revision           int            `json:"revision"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

// SegmentRef is a lightweight segment summary kept on an air for follow-up
// endpoints (cabins, seats).
type SegmentRef struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Air is one flight itinerary within a cart and the anchor for all
// per-flight ancillary selections.
type Air struct {
	AirID          string       `json:"airId"`
	OrderID        string       `json:"orderId"`
	ShoppingCartID string       `json:"shoppingCartId"`
	Segments       []SegmentRef `json:"segments,omitempty"`
	Ancillaries    Ancillaries  `json:"ancillaries"`
	Revision       int          `json:"revision"`
	CreatedAt      string       `json:"createdAt"`
	UpdatedAt      string       `json:"updatedAt"`
}

// Profile is a placeholder entity; auto-created on reference, otherwise inert.
type Profile struct {
	ProfileID string         `json:"profileId"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// Entity status values.
const (
	OrderStatusDraft = "DRAFT"
	CartStatusOpen   = "OPEN"
)

// Cart step values, advisory only; no handler enforces ordering.
const (
	StepFlightsSearch    = "FLIGHTS_SEARCH"
	StepFlightsSelection = "FLIGHTS_SELECTION"
	StepAncillaries      = "ANCILLARIES"
	StepSeats            = "SEATS"
	StepBags             = "BAGS"
	StepMeals            = "MEALS"
	StepPayment          = "PAYMENT"
)
