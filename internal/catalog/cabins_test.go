package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ots-platform/ibe-mock/internal/model"
)

func TestBuildCabinsSections(t *testing.T) {
	seg := model.SegmentRef{ID: "seg-1", From: "LIS", To: "MAD"}
	resp := BuildCabins(seg, "EUR", nil)
	require.Len(t, resp.Cabins, 3)

	business, premium, economy := resp.Cabins[0], resp.Cabins[1], resp.Cabins[2]
	assert.Equal(t, "BUSINESS", business.CabinType)
	assert.Equal(t, "PREMIUM_ECONOMY", premium.CabinType)
	assert.Equal(t, "ECONOMY", economy.CabinType)

	assert.Len(t, business.Rows, 9)
	assert.Len(t, premium.Rows, 5)
	assert.Len(t, economy.Rows, 40)
	assert.Equal(t, 1, business.Rows[0].Number)
	assert.Equal(t, 10, premium.Rows[0].Number)
	assert.Equal(t, 15, economy.Rows[0].Number)
	assert.Equal(t, seg, economy.Segment)
}

func TestBuildCabinsAisleGaps(t *testing.T) {
	resp := BuildCabins(model.SegmentRef{ID: "seg-1"}, "EUR", nil)
	economy := resp.Cabins[2]
	assert.Equal(t, []string{"A", "B", "C", "_", "D", "F", "G", "_", "H", "J", "K"}, economy.ColumnNamesRow)

	row := economy.Rows[0]
	require.Len(t, row.Seats, 11)
	assert.Equal(t, "AISLE", row.Seats[3].SlotCode)
	assert.Equal(t, "AISLE", row.Seats[7].SlotCode)
}

func TestBuildCabinsPricedSeats(t *testing.T) {
	resp := BuildCabins(model.SegmentRef{ID: "seg-1"}, "EUR", nil)
	economy := resp.Cabins[2]

	findSeat := func(cabin SeatCabin, rowNum int, col string) Seat {
		for _, row := range cabin.Rows {
			if row.Number != rowNum {
				continue
			}
			for _, s := range row.Seats {
				if s.Column == col {
					return s
				}
			}
		}
		t.Fatalf("seat %d%s not found", rowNum, col)
		return Seat{}
	}

	exitWindow := findSeat(economy, 15, "A")
	require.NotNil(t, exitWindow.Price)
	assert.Equal(t, 30.0, exitWindow.Price.Total.Price.Amount)
	assert.True(t, economy.Rows[0].ExitRow)

	exitMiddle := findSeat(economy, 40, "F")
	require.NotNil(t, exitMiddle.Price)
	assert.Equal(t, 25.0, exitMiddle.Price.Total.Price.Amount)

	regular := findSeat(economy, 20, "A")
	assert.Nil(t, regular.Price)

	assert.NotEmpty(t, economy.PriceGroups)
}

func TestBuildCabinsHeldSeats(t *testing.T) {
	selections := []model.SeatSelection{
		{PassengerID: "p1", SegmentID: "seg-1", RowNumber: "20", SeatNumber: "A"},
		{PassengerID: "p2", SegmentID: "other", RowNumber: "20", SeatNumber: "B"},
	}
	resp := BuildCabins(model.SegmentRef{ID: "seg-1"}, "EUR", selections)
	economy := resp.Cabins[2]

	for _, row := range economy.Rows {
		if row.Number != 20 {
			continue
		}
		for _, s := range row.Seats {
			switch s.Column {
			case "A":
				assert.False(t, s.Available)
				assert.Equal(t, "p1", s.SelectedPassenger)
			case "B":
				assert.Empty(t, s.SelectedPassenger, "selection on another segment is ignored")
			}
		}
	}
}

func TestBuildCabinsDeterministicOccupancy(t *testing.T) {
	a := BuildCabins(model.SegmentRef{ID: "seg-1"}, "EUR", nil)
	b := BuildCabins(model.SegmentRef{ID: "seg-1"}, "EUR", nil)
	assert.Equal(t, a, b)
}
