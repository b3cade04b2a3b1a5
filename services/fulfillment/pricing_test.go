package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateHotelPriceChicago(t *testing.T) {
	// "chicago" letter offsets: c=2 h=7 i=8 c=2 a=0 g=6 o=14 -> 39.
	// Per night: 100 + 39 + (100 + 0) = 239; four nights -> 956.
	assert.Equal(t, 956, EstimateHotelPrice("chicago", 4, "queen"))
}

func TestEstimateHotelPriceIsPure(t *testing.T) {
	first := EstimateHotelPrice("Seattle", 7, "deluxe")
	second := EstimateHotelPrice("Seattle", 7, "deluxe")
	assert.Equal(t, first, second)
}

func TestEstimateHotelPriceRoomBias(t *testing.T) {
	queen := EstimateHotelPrice("boston", 3, "queen")
	king := EstimateHotelPrice("boston", 3, "king")
	deluxe := EstimateHotelPrice("boston", 3, "deluxe")
	assert.Equal(t, queen+3, king)
	assert.Equal(t, queen+6, deluxe)
}

func TestEstimateHotelPriceCaseInsensitive(t *testing.T) {
	assert.Equal(t, EstimateHotelPrice("chicago", 2, "queen"), EstimateHotelPrice("Chicago", 2, "QUEEN"))
}
