package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/pricing"
)

// Seat map layout. Column "_" renders as an aisle gap.
var (
	businessColumns = []string{"A", "C", "_", "D", "F", "_", "H", "K"}
	economyColumns  = []string{"A", "B", "C", "_", "D", "F", "G", "_", "H", "J", "K"}
)

const (
	businessRowFirst = 1
	businessRowLast  = 9
	premiumRowFirst  = 10
	premiumRowLast   = 14
	economyRowFirst  = 15
	economyRowLast   = 54
)

// Seat is one selectable place in a cabin row.
type Seat struct {
	Column            string         `json:"column"`
	SlotCode          string         `json:"slotCode"`
	Available         bool           `json:"available"`
	Characteristics   []string       `json:"characteristics"`
	Price             *model.Pricing `json:"price,omitempty"`
	PriceGroup        string         `json:"priceGroup,omitempty"`
	SelectedPassenger string         `json:"selectedPassengerId,omitempty"`
}

// CabinRow is one physical row of seats.
type CabinRow struct {
	Number          int    `json:"number"`
	Seats           []Seat `json:"seats"`
	ExitRow         bool   `json:"exitRow"`
	OverWingRow     bool   `json:"overWingRow"`
	BulkheadRow     bool   `json:"bulkheadRow"`
	CharacteristicA string `json:"characteristicA,omitempty"`
}

// SeatCabin is a cabin section of the seat map for one segment.
type SeatCabin struct {
	CabinType      string           `json:"cabinType"`
	Segment        model.SegmentRef `json:"segment"`
	Rows           []CabinRow       `json:"rows"`
	ColumnNamesRow []string         `json:"columnNamesRow"`
	PriceGroups    map[string]any   `json:"priceGroups"`
}

// CabinsSearchResponse is the payload of every cabins endpoint.
type CabinsSearchResponse struct {
	Cabins               []SeatCabin `json:"cabins"`
	SelectPriorityMember bool        `json:"selectPriorityMember"`
}

// BuildCabins fabricates the full seat map for a segment. Occupancy is
// deterministic per segment, and seats already held in the given selections
// are marked with their passenger.
func BuildCabins(seg model.SegmentRef, currency string, selections []model.SeatSelection) CabinsSearchResponse {
	held := make(map[string]string, len(selections))
	for _, s := range selections {
		if s.SegmentID == seg.ID {
			held[s.Seat()] = s.PassengerID
		}
	}

	cabins := []SeatCabin{
		buildCabin("BUSINESS", seg, businessRowFirst, businessRowLast, businessColumns, currency, held),
		buildCabin("PREMIUM_ECONOMY", seg, premiumRowFirst, premiumRowLast, economyColumns, currency, held),
		buildCabin("ECONOMY", seg, economyRowFirst, economyRowLast, economyColumns, currency, held),
	}
	return CabinsSearchResponse{Cabins: cabins}
}

func buildCabin(cabinType string, seg model.SegmentRef, first, last int, columns []string, currency string, held map[string]string) SeatCabin {
	rows := make([]CabinRow, 0, last-first+1)
	priceGroups := map[string]any{}
	for r := first; r <= last; r++ {
		row := CabinRow{Number: r, ExitRow: r == economyRowFirst || r == 40}
		for _, col := range columns {
			if col == "_" {
				row.Seats = append(row.Seats, Seat{Column: "_", SlotCode: "AISLE"})
				continue
			}
			seatKey := strconv.Itoa(r) + col
			fee := pricing.SeatFee(strconv.Itoa(r), col)
			seat := Seat{
				Column:          col,
				SlotCode:        "SEAT",
				Available:       seatAvailable(seg.ID, seatKey),
				Characteristics: []string{},
			}
			if fee > 0 {
				p := model.NewPricing(fee, currency)
				seat.Price = &p
				group := fmt.Sprintf("PG_%.0f", fee)
				seat.PriceGroup = group
				priceGroups[group] = map[string]any{"price": p}
			}
			if pid, ok := held[seatKey]; ok {
				seat.Available = false
				seat.SelectedPassenger = pid
			}
			row.Seats = append(row.Seats, seat)
		}
		rows = append(rows, row)
	}
	return SeatCabin{
		CabinType:      cabinType,
		Segment:        seg,
		Rows:           rows,
		ColumnNamesRow: columns,
		PriceGroups:    priceGroups,
	}
}

// seatAvailable hashes segment and seat into a stable pseudo-random
// occupancy bit, roughly three quarters of seats open.
func seatAvailable(segmentID, seatKey string) bool {
	sum := sha256.Sum256([]byte(segmentID + "|" + seatKey))
	n, _ := strconv.ParseUint(hex.EncodeToString(sum[:4]), 16, 64)
	return n%4 != 0
}
