package model

// Flight-search shapes. These are generated synthetically (internal/catalog)
// but stored on the cart and read back by the repricing engine, so they are
// typed rather than kept as raw JSON.

// Airport identifies one end of a segment.
type Airport struct {
	Code     string `json:"code"`
	Terminal string `json:"terminal,omitempty"`
}

// Airline carries display data for a carrier.
type Airline struct {
	Code         string `json:"code"`
	DisplayCode  string `json:"displayCode"`
	Name         string `json:"name"`
	FlightNumber string `json:"flightNumber,omitempty"`
}

// Duration is expressed in minutes everywhere in the API.
type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// Segment is one flight leg.
type Segment struct {
	ID                 string   `json:"id"`
	DepartureAirport   Airport  `json:"departureAirport"`
	ArrivalAirport     Airport  `json:"arrivalAirport"`
	DepartureDate      string   `json:"departureDate"`
	ArrivalDate        string   `json:"arrivalDate"`
	DepartureTimeZone  string   `json:"departureTimeZone"`
	ArrivalTimeZone    string   `json:"arrivalTimeZone"`
	Duration           Duration `json:"duration"`
	MarketingAirline   Airline  `json:"marketingAirline"`
	OperatingAirline   Airline  `json:"operatingAirline"`
	DisplayAirlineCode string   `json:"displayAirlineCode"`
	StatusByCoupons    string   `json:"statusByCoupons"`
	Actual             bool     `json:"actual"`
}

// Route is an origin-destination path made of one or more segments.
type Route struct {
	ID                string    `json:"id"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	DepartureDate     string    `json:"departureDate"`
	ArrivalDate       string    `json:"arrivalDate"`
	DepartureTimeZone string    `json:"departureTimeZone"`
	ArrivalTimeZone   string    `json:"arrivalTimeZone"`
	Duration          Duration  `json:"duration"`
	FareFamily        string    `json:"fareFamily"`
	Segments          []Segment `json:"segments"`
	Stops             []any     `json:"stops"`
	Through           bool      `json:"through"`
	TransferFare      bool      `json:"transferFare"`
	Actual            bool      `json:"actual"`
	StatusByCoupons   string    `json:"statusByCoupons"`
}

// Solution is a fare-family price quote for an option.
type Solution struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	FareFamily  string  `json:"fareFamily"`
	Cabin       string  `json:"cabin"`
	Pricing     Pricing `json:"pricing"`
	Labels      []any   `json:"labels"`
	Preselected bool    `json:"preselected"`
}

// Option is one itinerary inside an option set, with its fare solutions.
type Option struct {
	Order              int                  `json:"order"`
	ID                 string               `json:"id"`
	Routes             []Route              `json:"routes"`
	Solutions          map[string]*Solution `json:"solutions"`
	CheapestSolutionID string               `json:"cheapestSolutionId"`
	Available          bool                 `json:"available"`
	InsufficientPlaces bool                 `json:"insufficientPlaces"`
	UserSelected       bool                 `json:"userSelected"`
	SoldOut            bool                 `json:"soldOut"`
	Labels             []any                `json:"labels"`
}

// Selection points at the currently chosen option/solution of a set.
type Selection struct {
	OptionID   string `json:"optionId"`
	SolutionID string `json:"solutionId"`
}

// OptionSet groups competing options for one requested route.
type OptionSet struct {
	ID                     string     `json:"id"`
	Index                  int        `json:"index"`
	Options                []*Option  `json:"options"`
	Selection              *Selection `json:"selection,omitempty"`
	OptionID               string     `json:"optionId,omitempty"`
	SolutionID             string     `json:"solutionId,omitempty"`
	Sort                   string     `json:"sort"`
	CheapestOptionID       string     `json:"cheapestOptionId"`
	FastestOptionID        string     `json:"fastestOptionId"`
	MostConvenientOptionID string     `json:"mostConvenientOptionId"`
}

// FlightsSearch is the search result blob cached on a shopping cart.
type FlightsSearch struct {
	SearchParams          map[string]any `json:"searchParams"`
	OptionSets            []*OptionSet   `json:"optionSets"`
	AdvertisingCampaign   any            `json:"advertisingCampaign"`
	FlightAlternatives    []any          `json:"flightAlternatives"`
	RadiusFlight          any            `json:"radiusFlight"`
	WithPersonalPromoCode bool           `json:"withPersonalPromoCode"`
	Penalty               any            `json:"penalty"`
}

// Clone deep-copies the search tree so a rendered response never shares
// option or selection state with the stored copy, which later requests
// mutate under the store lock. SearchParams values and label slices are
// treated as write-once and copied shallowly.
func (fs *FlightsSearch) Clone() *FlightsSearch {
	if fs == nil {
		return nil
	}
	out := *fs
	if fs.SearchParams != nil {
		out.SearchParams = make(map[string]any, len(fs.SearchParams))
		for k, v := range fs.SearchParams {
			out.SearchParams[k] = v
		}
	}
	if fs.OptionSets != nil {
		out.OptionSets = make([]*OptionSet, len(fs.OptionSets))
		for i, os := range fs.OptionSets {
			out.OptionSets[i] = os.clone()
		}
	}
	return &out
}

func (os *OptionSet) clone() *OptionSet {
	if os == nil {
		return nil
	}
	out := *os
	if os.Selection != nil {
		sel := *os.Selection
		out.Selection = &sel
	}
	if os.Options != nil {
		out.Options = make([]*Option, len(os.Options))
		for i, opt := range os.Options {
			out.Options[i] = opt.clone()
		}
	}
	return &out
}

func (o *Option) clone() *Option {
	if o == nil {
		return nil
	}
	out := *o
	if o.Routes != nil {
		out.Routes = make([]Route, len(o.Routes))
		for i, r := range o.Routes {
			r.Segments = append([]Segment(nil), r.Segments...)
			out.Routes[i] = r
		}
	}
	if o.Solutions != nil {
		out.Solutions = make(map[string]*Solution, len(o.Solutions))
		for id, sol := range o.Solutions {
			if sol == nil {
				out.Solutions[id] = nil
				continue
			}
			cp := *sol
			out.Solutions[id] = &cp
		}
	}
	return &out
}

// FindOptionSet returns the set with the given id, or nil.
func (fs *FlightsSearch) FindOptionSet(id string) *OptionSet {
	if fs == nil {
		return nil
	}
	for _, os := range fs.OptionSets {
		if os != nil && os.ID == id {
			return os
		}
	}
	return nil
}

// FindOption returns the option with the given id, or nil.
func (os *OptionSet) FindOption(id string) *Option {
	if os == nil {
		return nil
	}
	for _, opt := range os.Options {
		if opt != nil && opt.ID == id {
			return opt
		}
	}
	return nil
}

// SelectedIDs resolves the effective (optionId, solutionId) for the set:
// explicit selection first, the set's own cached ids next, finally the
// option's precomputed cheapest solution.
func (os *OptionSet) SelectedIDs() (string, string) {
	if os == nil {
		return "", ""
	}
	optionID, solutionID := os.OptionID, os.SolutionID
	if os.Selection != nil {
		if os.Selection.OptionID != "" {
			optionID = os.Selection.OptionID
		}
		if os.Selection.SolutionID != "" {
			solutionID = os.Selection.SolutionID
		}
	}
	if solutionID == "" {
		if opt := os.FindOption(optionID); opt != nil {
			solutionID = opt.CheapestSolutionID
		}
	}
	return optionID, solutionID
}
