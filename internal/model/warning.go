package model

// Warning codes the mock emits. Domain-level problems are always reported
// here rather than via HTTP status codes.
const (
	WarnMissingHeader        = "MISSING_HEADER"
	WarnAutoCreated          = "AUTO_CREATED"
	WarnSeatSelectionInvalid = "SEAT_SELECTION_INVALID"
	WarnSeatReassigned       = "SEAT_REASSIGNED"
	WarnSeatsCleared         = "SEAT_SELECTION_CLEARED"
	WarnBagSelectionInvalid  = "BAG_SELECTION_INVALID"
	WarnBagLimitApplied      = "BAG_LIMIT_APPLIED"
	WarnBagsCleared          = "BAGS_CLEARED"
	WarnMealSelectionInvalid = "MEAL_SELECTION_INVALID"
	WarnMealsCleared         = "MEAL_SELECTION_CLEARED"
	WarnNoSearchContext      = "NO_SEARCH_CONTEXT"
	WarnOptionSetNotFound    = "OPTION_SET_NOT_FOUND"
	WarnOptionNotFound       = "OPTION_NOT_FOUND"
	WarnNotImplemented       = "NOT_IMPLEMENTED"
)

// ErrUnexpected is the only error code the envelope ever carries; it is
// produced by the recovery middleware, never by handlers.
const ErrUnexpected = "UNEXPECTED_ERROR"

// Warning is a non-fatal signal carried in the response envelope.
type Warning struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewWarning builds a warning with optional details.
func NewWarning(code, message string, details map[string]any) Warning {
	return Warning{Code: code, Message: message, Details: details}
}

// ErrorObject is the envelope's error payload.
type ErrorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
