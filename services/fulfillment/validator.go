package fulfillment

import (
	"fmt"
	"strings"
	"time"

	"tripdesk/models"

	"github.com/araddon/dateparse"
)

// supportedCities is the fixed list of destinations the bot can book.
var supportedCities = []string{
	"new york", "los angeles", "chicago", "houston", "philadelphia", "phoenix",
	"san antonio", "san diego", "dallas", "san jose", "austin", "jacksonville",
	"san francisco", "indianapolis", "columbus", "fort worth", "charlotte",
	"detroit", "el paso", "seattle", "denver", "washington dc", "memphis",
	"boston", "nashville", "baltimore", "portland",
}

// roomTypes is ordered: the index of a room type feeds the pricing bias.
var roomTypes = []string{"queen", "king", "deluxe"}

func isSupportedCity(city string) bool {
	lowered := strings.ToLower(city)
	for _, c := range supportedCities {
		if c == lowered {
			return true
		}
	}
	return false
}

func roomTypeIndex(roomType string) int {
	lowered := strings.ToLower(roomType)
	for i, rt := range roomTypes {
		if rt == lowered {
			return i
		}
	}
	return -1
}

func invalidSlot(slot, content string) models.ValidationResult {
	return models.ValidationResult{
		IsValid:      false,
		ViolatedSlot: slot,
		Message:      &models.Message{ContentType: models.ContentTypePlainText, Content: content},
	}
}

// ValidateHotelSlots checks each provided slot value against its domain
// constraint. Validation order is fixed (Location, CheckInDate, Nights,
// RoomType) and the first violation short-circuits. Absent slots are not
// validated; the platform has simply not collected them yet.
func ValidateHotelSlots(slots models.SlotSet, now time.Time) models.ValidationResult {
	if slots.Location != nil && !isSupportedCity(*slots.Location) {
		return invalidSlot(models.SlotLocation,
			fmt.Sprintf("We currently do not support %s as a valid destination. Can you try a different city?", *slots.Location))
	}

	if slots.CheckInDate != nil {
		checkIn, err := dateparse.ParseAny(*slots.CheckInDate)
		if err != nil {
			return invalidSlot(models.SlotCheckInDate,
				"I did not understand your check in date. When would you like to check in?")
		}
		// Same-day and past check-ins are rejected; compare at date granularity.
		if !truncateToDate(checkIn).After(truncateToDate(now)) {
			return invalidSlot(models.SlotCheckInDate,
				"Reservations must be scheduled at least one day in advance. Can you try a different date?")
		}
	}

	if slots.Nights != nil {
		if n := slots.Nights.Int(); n < 1 || n > 30 {
			return invalidSlot(models.SlotNights,
				"You can make a reservations for from one to thirty nights. How many nights would you like to stay for?")
		}
	}

	if slots.RoomType != nil && roomTypeIndex(*slots.RoomType) < 0 {
		return invalidSlot(models.SlotRoomType,
			"I did not recognize that room type. Would you like to stay in a queen, king, or deluxe room?")
	}

	return models.ValidationResult{IsValid: true}
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
