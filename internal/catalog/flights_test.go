package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoutesDefaults(t *testing.T) {
	routes := ExtractRoutes(map[string]any{})
	require.Len(t, routes, 1)
	assert.Equal(t, SearchRoute{"AAA", "BBB", "2026-02-01"}, routes[0])
}

func TestExtractRoutesPartialFields(t *testing.T) {
	routes := ExtractRoutes(map[string]any{
		"routes": []any{
			map[string]any{"origin": "LIS", "destination": "MAD", "departureDate": "2026-03-10"},
			map[string]any{"origin": "MAD"},
		},
	})
	require.Len(t, routes, 2)
	assert.Equal(t, SearchRoute{"LIS", "MAD", "2026-03-10"}, routes[0])
	assert.Equal(t, SearchRoute{"MAD", "BBB", "2026-02-01"}, routes[1])
}

func TestSearchKeyIncludesEveryLeg(t *testing.T) {
	params := map[string]any{
		"tripType": "ROUND_TRIP",
		"routes": []any{
			map[string]any{"origin": "LIS", "destination": "MAD", "departureDate": "2026-03-10"},
			map[string]any{"origin": "MAD", "destination": "LIS", "departureDate": "2026-03-20"},
		},
	}
	key := SearchKey("conv-1", "revenue", params)
	assert.Equal(t, "conv-1|revenue|ROUND_TRIP|LIS|MAD|2026-03-10|MAD|LIS|2026-03-20", key)
}

func TestBuildSearchDeterministic(t *testing.T) {
	params := map[string]any{"routes": []any{map[string]any{"origin": "LIS", "destination": "MAD"}}}
	a := BuildSearch(params, "seed-1", "EUR")
	b := BuildSearch(params, "seed-1", "EUR")
	require.Len(t, a.OptionSets, 1)
	assert.Equal(t, a.OptionSets[0].ID, b.OptionSets[0].ID)
	assert.Equal(t, a.OptionSets[0].Options[0].ID, b.OptionSets[0].Options[0].ID)

	c := BuildSearch(params, "seed-2", "EUR")
	assert.NotEqual(t, a.OptionSets[0].ID, c.OptionSets[0].ID)
}

func TestBuildOptionSetShape(t *testing.T) {
	set := BuildOptionSet(0, SearchRoute{"LIS", "MAD", "2026-03-10"}, "EUR", "seed")
	require.Len(t, set.Options, 3)

	cheap, fast, conv := set.Options[0], set.Options[1], set.Options[2]
	assert.Len(t, cheap.Routes[0].Segments, 2, "cheap option connects via a hub")
	assert.Len(t, fast.Routes[0].Segments, 1)
	assert.Len(t, conv.Routes[0].Segments, 1)
	assert.Equal(t, "HUB", cheap.Routes[0].Segments[0].ArrivalAirport.Code)

	assert.Equal(t, cheap.ID, set.CheapestOptionID)
	assert.Equal(t, fast.ID, set.FastestOptionID)
	assert.Equal(t, conv.ID, set.MostConvenientOptionID)

	// Default selection is the cheapest option's cheapest solution.
	require.NotNil(t, set.Selection)
	assert.Equal(t, cheap.ID, set.Selection.OptionID)
	assert.Equal(t, cheap.CheapestSolutionID, set.Selection.SolutionID)
	assert.Equal(t, cheap.ID, set.OptionID)
}

func TestBuildOptionSetFareLadder(t *testing.T) {
	set := BuildOptionSet(0, SearchRoute{"LIS", "MAD", "2026-03-10"}, "EUR", "seed")
	cheap := set.Options[0]
	require.Len(t, cheap.Solutions, 3)

	byFamily := map[string]float64{}
	preselected := ""
	for _, sol := range cheap.Solutions {
		byFamily[sol.FareFamily] = sol.Pricing.Total.Price.Amount
		if sol.Preselected {
			preselected = sol.FareFamily
		}
		assert.Equal(t, "EUR", sol.Pricing.Total.Price.Currency)
	}
	assert.Equal(t, 119.0, byFamily["ECONOMYLITE"])
	assert.Equal(t, 119.0+35, byFamily["ECONOMYSTANDARD"])
	assert.Equal(t, 119.0+85, byFamily["ECONOMYFLEX"])
	assert.Equal(t, "ECONOMYLITE", preselected)
	assert.Equal(t, cheap.Solutions[cheap.CheapestSolutionID].FareFamily, "ECONOMYLITE")
}

func TestBuildOptionSetIndexSurcharge(t *testing.T) {
	first := BuildOptionSet(0, SearchRoute{"LIS", "MAD", "2026-03-10"}, "EUR", "seed")
	second := BuildOptionSet(1, SearchRoute{"MAD", "LIS", "2026-03-20"}, "EUR", "seed")

	cheapFirst := first.Options[0].Solutions[first.Options[0].CheapestSolutionID]
	cheapSecond := second.Options[0].Solutions[second.Options[0].CheapestSolutionID]
	assert.Equal(t, cheapFirst.Pricing.Total.Price.Amount+15, cheapSecond.Pricing.Total.Price.Amount)
}

func TestSegmentRefsFlattens(t *testing.T) {
	fs := BuildSearch(map[string]any{}, "seed", "USD")
	refs := SegmentRefs(fs)
	// 3 options per set: 2 segments + 1 + 1.
	assert.Len(t, refs, 4)
	assert.Equal(t, "AAA", refs[0].From)
	assert.Equal(t, "BBB", refs[0].To)
	assert.Empty(t, SegmentRefs(nil))
}
