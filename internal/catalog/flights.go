// Package catalog fabricates the synthetic flight, cabin and meal content
// the mock serves. Everything here is pure and deterministic: the same seed
// always produces the same ids and shapes, which is what lets a repeated
// search be recognized as the same entities.
package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/ots-platform/ibe-mock/internal/ids"
	"github.com/ots-platform/ibe-mock/internal/model"
)

// SearchRoute is one requested origin/destination/date leg.
type SearchRoute struct {
	Origin        string
	Destination   string
	DepartureDate string
}

// Fallbacks for absent or unparsable search parameters.
const (
	defaultOrigin      = "AAA"
	defaultDestination = "BBB"
	defaultDate        = "2026-02-01"
)

// fare families offered on every option, cheapest first.
var fareFamilies = []struct {
	name      string
	surcharge float64
}{
	{"ECONOMYLITE", 0},
	{"ECONOMYSTANDARD", 35},
	{"ECONOMYFLEX", 85},
}

// ExtractRoutes pulls requested routes out of raw search params, defaulting
// anything missing. At least one route is always returned.
func ExtractRoutes(searchParams map[string]any) []SearchRoute {
	var out []SearchRoute
	if raw, ok := searchParams["routes"].([]any); ok {
		for _, r := range raw {
			m, ok := r.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, SearchRoute{
				Origin:        stringOr(m["origin"], defaultOrigin),
				Destination:   stringOr(m["destination"], defaultDestination),
				DepartureDate: stringOr(m["departureDate"], defaultDate),
			})
		}
	}
	if len(out) == 0 {
		out = append(out, SearchRoute{defaultOrigin, defaultDestination, defaultDate})
	}
	return out
}

func stringOr(v any, def string) string {
	s, _ := v.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// SearchKey derives the deterministic key identifying one search: the
// conversation, flow, trip type and every requested leg.
func SearchKey(conversationID, flow string, searchParams map[string]any) string {
	parts := []string{conversationID, flow, stringOr(searchParams["tripType"], "ONE_WAY")}
	for _, r := range ExtractRoutes(searchParams) {
		parts = append(parts, r.Origin, r.Destination, r.DepartureDate)
	}
	return strings.Join(parts, "|")
}

// BuildSearch fabricates a full search result for the requested routes.
func BuildSearch(searchParams map[string]any, seed, currency string) *model.FlightsSearch {
	routes := ExtractRoutes(searchParams)
	sets := make([]*model.OptionSet, 0, len(routes))
	for i, r := range routes {
		sets = append(sets, BuildOptionSet(i, r, currency, seed))
	}
	return &model.FlightsSearch{
		SearchParams:       searchParams,
		OptionSets:         sets,
		FlightAlternatives: []any{},
	}
}

// BuildOptionSet fabricates one option set: a cheap one-stop option plus a
// fast and a convenient direct option, each with three fare families. The
// default selection is the cheapest option's cheapest solution.
func BuildOptionSet(index int, r SearchRoute, currency, seed string) *model.OptionSet {
	depDt, err := time.Parse("2006-01-02T15:04:05", r.DepartureDate+"T08:00:00")
	if err != nil {
		depDt, _ = time.Parse("2006-01-02T15:04:05", defaultDate+"T08:00:00")
	}

	setID := ids.StableID("optset", seed+":"+strconv.Itoa(index), ids.DefaultLength)
	base := 119.0 + float64(index)*15

	options := []*model.Option{
		buildOption(ids.StableID("opt", setID+":cheap", ids.DefaultLength), 1, r, depDt, currency, base, false),
		buildOption(ids.StableID("opt", setID+":fast", ids.DefaultLength), 2, r, depDt.Add(2*time.Hour), currency, base+30, true),
		buildOption(ids.StableID("opt", setID+":conv", ids.DefaultLength), 3, r, depDt.Add(4*time.Hour), currency, base+60, true),
	}

	cheapest := options[0]
	return &model.OptionSet{
		ID:                     setID,
		Index:                  index,
		Options:                options,
		Selection:              &model.Selection{OptionID: cheapest.ID, SolutionID: cheapest.CheapestSolutionID},
		OptionID:               cheapest.ID,
		SolutionID:             cheapest.CheapestSolutionID,
		Sort:                   "CHEAPEST",
		CheapestOptionID:       cheapest.ID,
		FastestOptionID:        options[1].ID,
		MostConvenientOptionID: options[2].ID,
	}
}

func buildOption(optionID string, order int, r SearchRoute, dep time.Time, currency string, baseAmount float64, direct bool) *model.Option {
	var segments []model.Segment
	var arr time.Time

	if direct {
		arr = dep.Add(2*time.Hour + 15*time.Minute)
		segments = []model.Segment{
			buildSegment(ids.StableID("seg", optionID+":0", ids.DefaultLength), r.Origin, r.Destination, dep, arr, strconv.Itoa(100+order)),
		}
	} else {
		// One stop via a hub.
		arr1 := dep.Add(1*time.Hour + 20*time.Minute)
		dep2 := arr1.Add(55 * time.Minute)
		arr = dep2.Add(1*time.Hour + 40*time.Minute)
		segments = []model.Segment{
			buildSegment(ids.StableID("seg", optionID+":1", ids.DefaultLength), r.Origin, "HUB", dep, arr1, strconv.Itoa(200+order)),
			buildSegment(ids.StableID("seg", optionID+":2", ids.DefaultLength), "HUB", r.Destination, dep2, arr, strconv.Itoa(300+order)),
		}
	}

	route := model.Route{
		ID:                ids.StableID("route", optionID+":route", ids.DefaultLength),
		Origin:            r.Origin,
		Destination:       r.Destination,
		DepartureDate:     ids.LocalISO(dep),
		ArrivalDate:       ids.LocalISO(arr),
		DepartureTimeZone: "UTC",
		ArrivalTimeZone:   "UTC",
		Duration:          model.Duration{Amount: int(arr.Sub(dep).Minutes()), Unit: "minutes"},
		FareFamily:        "ECONOMY",
		Segments:          segments,
		Stops:             []any{},
		StatusByCoupons:   "OK",
	}

	solutions := make(map[string]*model.Solution, len(fareFamilies))
	cheapestID := ""
	for i, ff := range fareFamilies {
		solID := ids.StableID("sol", optionID+":"+ff.name, ids.DefaultLength)
		solutions[solID] = &model.Solution{
			ID:          solID,
			Code:        solID,
			FareFamily:  ff.name,
			Cabin:       "ECONOMY",
			Pricing:     model.NewPricing(baseAmount+ff.surcharge, currency),
			Labels:      []any{},
			Preselected: i == 0,
		}
		if i == 0 {
			cheapestID = solID
		}
	}

	return &model.Option{
		Order:              order,
		ID:                 optionID,
		Routes:             []model.Route{route},
		Solutions:          solutions,
		CheapestSolutionID: cheapestID,
		Available:          true,
		Labels:             []any{},
	}
}

func buildSegment(segID, origin, destination string, dep, arr time.Time, flightNumber string) model.Segment {
	airline := model.Airline{Code: "MO", DisplayCode: "MO", Name: "Mock Airlines", FlightNumber: flightNumber}
	return model.Segment{
		ID:                 segID,
		DepartureAirport:   model.Airport{Code: origin, Terminal: "A"},
		ArrivalAirport:     model.Airport{Code: destination, Terminal: "B"},
		DepartureDate:      ids.LocalISO(dep),
		ArrivalDate:        ids.LocalISO(arr),
		DepartureTimeZone:  "UTC",
		ArrivalTimeZone:    "UTC",
		Duration:           model.Duration{Amount: int(arr.Sub(dep).Minutes()), Unit: "minutes"},
		MarketingAirline:   airline,
		OperatingAirline:   airline,
		DisplayAirlineCode: "MO",
		StatusByCoupons:    "OK",
	}
}

// SegmentRefs flattens every segment of every option into the lightweight
// summary kept on an air entity.
func SegmentRefs(fs *model.FlightsSearch) []model.SegmentRef {
	var refs []model.SegmentRef
	if fs == nil {
		return refs
	}
	for _, set := range fs.OptionSets {
		for _, opt := range set.Options {
			for _, rt := range opt.Routes {
				for _, seg := range rt.Segments {
					refs = append(refs, model.SegmentRef{ID: seg.ID, From: rt.Origin, To: rt.Destination})
				}
			}
		}
	}
	return refs
}
