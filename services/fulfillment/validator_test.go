package fulfillment

import (
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func nightsPtr(n int) *models.SlotInt {
	v := models.SlotInt(n)
	return &v
}

var testNow = time.Date(2026, time.August, 29, 15, 4, 5, 0, time.UTC)

func TestValidateHotelSlotsAllEmpty(t *testing.T) {
	result := ValidateHotelSlots(models.SlotSet{}, testNow)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.ViolatedSlot)
	assert.Nil(t, result.Message)
}

func TestValidateHotelSlotsLocation(t *testing.T) {
	result := ValidateHotelSlots(models.SlotSet{Location: strPtr("Atlantis")}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotLocation, result.ViolatedSlot)
	require.NotNil(t, result.Message)
	assert.Contains(t, result.Message.Content, "Atlantis")

	// City matching is case-insensitive.
	for _, city := range []string{"Chicago", "chicago", "CHICAGO", "New York", "washington dc"} {
		result := ValidateHotelSlots(models.SlotSet{Location: strPtr(city)}, testNow)
		assert.True(t, result.IsValid, "expected %q to be a supported city", city)
	}
}

func TestValidateHotelSlotsCheckInDate(t *testing.T) {
	// Unparseable input.
	result := ValidateHotelSlots(models.SlotSet{CheckInDate: strPtr("not a date")}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotCheckInDate, result.ViolatedSlot)
	assert.Contains(t, result.Message.Content, "did not understand")

	// Same-day check-in is rejected.
	result = ValidateHotelSlots(models.SlotSet{CheckInDate: strPtr("2026-08-29")}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotCheckInDate, result.ViolatedSlot)
	assert.Contains(t, result.Message.Content, "at least one day in advance")

	// Past dates are rejected.
	result = ValidateHotelSlots(models.SlotSet{CheckInDate: strPtr("2020-01-01")}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotCheckInDate, result.ViolatedSlot)

	// Tomorrow is fine.
	result = ValidateHotelSlots(models.SlotSet{CheckInDate: strPtr("2026-08-30")}, testNow)
	assert.True(t, result.IsValid)
}

func TestValidateHotelSlotsNights(t *testing.T) {
	for _, n := range []int{-3, 0, 31, 100} {
		result := ValidateHotelSlots(models.SlotSet{Nights: nightsPtr(n)}, testNow)
		require.False(t, result.IsValid, "expected %d nights to be rejected", n)
		assert.Equal(t, models.SlotNights, result.ViolatedSlot)
	}
	for _, n := range []int{1, 15, 30} {
		result := ValidateHotelSlots(models.SlotSet{Nights: nightsPtr(n)}, testNow)
		assert.True(t, result.IsValid, "expected %d nights to be accepted", n)
	}
}

func TestValidateHotelSlotsRoomType(t *testing.T) {
	result := ValidateHotelSlots(models.SlotSet{RoomType: strPtr("penthouse")}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotRoomType, result.ViolatedSlot)

	for _, rt := range []string{"queen", "King", "DELUXE"} {
		result := ValidateHotelSlots(models.SlotSet{RoomType: strPtr(rt)}, testNow)
		assert.True(t, result.IsValid, "expected %q to be a valid room type", rt)
	}
}

func TestValidateHotelSlotsOrderShortCircuits(t *testing.T) {
	// Location is checked before Nights; only the first violation is reported.
	result := ValidateHotelSlots(models.SlotSet{
		Location: strPtr("Atlantis"),
		Nights:   nightsPtr(0),
	}, testNow)
	require.False(t, result.IsValid)
	assert.Equal(t, models.SlotLocation, result.ViolatedSlot)
}
