package fulfillment

import "strings"

// EstimateHotelPrice generates a number within a reasonable range that might
// be expected for a hotel. The price is fixed for a pair of location and
// roomType: a per-character "cost of living" bias for the city plus a
// room-type bias, times the number of nights. This is a placeholder pricing
// oracle, not a rate table, and its exact output is relied upon.
func EstimateHotelPrice(location string, nights int, roomType string) int {
	costOfLiving := 0
	for _, r := range strings.ToLower(location) {
		costOfLiving += int(r) - 'a'
	}
	return nights * (100 + costOfLiving + (100 + roomTypeIndex(roomType)))
}
