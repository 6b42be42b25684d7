package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatFeeBusinessRowsFree(t *testing.T) {
	for _, row := range []string{"1", "5", "9"} {
		for _, col := range []string{"A", "D", "K"} {
			assert.Zero(t, SeatFee(row, col), "row %s col %s", row, col)
		}
	}
}

func TestSeatFeeExtraLegroomPair(t *testing.T) {
	assert.Equal(t, 25.0, SeatFee("10", "D"))
	assert.Equal(t, 25.0, SeatFee("10", "F"))
	assert.Zero(t, SeatFee("10", "A"))
	assert.Zero(t, SeatFee("11", "D"))
	assert.Zero(t, SeatFee("14", "F"))
}

func TestSeatFeeExitRows(t *testing.T) {
	for _, row := range []string{"15", "40"} {
		assert.Equal(t, 25.0, SeatFee(row, "D"))
		assert.Equal(t, 25.0, SeatFee(row, "F"))
		assert.Equal(t, 25.0, SeatFee(row, "G"))
		assert.Equal(t, 30.0, SeatFee(row, "A"))
		assert.Equal(t, 30.0, SeatFee(row, "K"))
	}
	assert.Zero(t, SeatFee("16", "A"))
	assert.Zero(t, SeatFee("39", "D"))
	assert.Zero(t, SeatFee("41", "K"))
}

func TestSeatFeeBadRow(t *testing.T) {
	assert.Zero(t, SeatFee("", "A"))
	assert.Zero(t, SeatFee("x", "A"))
}
