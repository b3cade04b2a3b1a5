package fulfillment

import (
	"encoding/json"
	"fmt"
	"strconv"

	"tripdesk/models"
)

// TrackReservation serializes the in-progress reservation draft into the
// session attributes. Written every turn, even mid-validation and with nil
// slots, so the draft is always recoverable by the caller.
func TrackReservation(attrs map[string]string, res models.Reservation) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation: %w", err)
	}
	attrs[models.AttrCurrentReservation] = string(data)
	return nil
}

// SetReservationPrice stores the quoted price for a fully specified
// reservation. Attribute values are strings, so the price travels in its
// decimal form.
func SetReservationPrice(attrs map[string]string, price int) {
	attrs[models.AttrCurrentReservationPrice] = strconv.Itoa(price)
}

// ClearReservationPrice drops a stale price quote. Removing a key that is
// already absent is a no-op, not an error.
func ClearReservationPrice(attrs map[string]string) {
	delete(attrs, models.AttrCurrentReservationPrice)
}

// ConfirmReservation promotes the draft to lastConfirmedReservation and
// removes the transient draft and price keys.
func ConfirmReservation(attrs map[string]string, res models.Reservation) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation: %w", err)
	}
	delete(attrs, models.AttrCurrentReservationPrice)
	delete(attrs, models.AttrCurrentReservation)
	attrs[models.AttrLastConfirmedReservation] = string(data)
	return nil
}
