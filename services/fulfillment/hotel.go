package fulfillment

import (
	"time"

	"tripdesk/models"

	"go.uber.org/zap"
)

// HotelBookingService drives one turn of the BookHotel conversation.
type HotelBookingService interface {
	BookHotel(req models.IntentRequest) (models.Directive, error)
}

// DefaultHotelBookingService implements HotelBookingService. Each turn is
// reconstructed entirely from the incoming slots and session attributes, so
// identical requests produce identical directives.
type DefaultHotelBookingService struct {
	Logger *zap.Logger
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultHotelBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultHotelBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// BookHotel validates the slot values gathered so far and returns the next
// directive for the platform: re-elicit a bad slot, delegate to the native
// dialog flow, or close the conversation once the booking is confirmed.
func (s *DefaultHotelBookingService) BookHotel(req models.IntentRequest) (models.Directive, error) {
	slots := req.CurrentIntent.Slots

	attrs := req.SessionAttributes
	if attrs == nil {
		attrs = map[string]string{}
	}

	// Track the current reservation so the draft survives the turn.
	reservation := models.NewHotelReservation(slots)
	if err := TrackReservation(attrs, reservation); err != nil {
		return models.Directive{}, err
	}

	if req.InvocationSource == models.InvocationSourceDialogCodeHook {
		result := ValidateHotelSlots(slots, s.now())
		if !result.IsValid {
			// Clear the offending value so the platform asks for it again.
			slots.Clear(result.ViolatedSlot)
			return ElicitSlot(attrs, req.CurrentIntent.Name, slots, result.ViolatedSlot, *result.Message), nil
		}

		// Let native dialog rules elicit the remaining slots and prompt for
		// confirmation. Pass the price back once it can be calculated;
		// otherwise drop any stale quote.
		if slots.Complete() {
			price := EstimateHotelPrice(*slots.Location, slots.Nights.Int(), *slots.RoomType)
			SetReservationPrice(attrs, price)
		} else {
			ClearReservationPrice(attrs)
		}
		return Delegate(attrs, slots), nil
	}

	// Booking the hotel. In a real application, this would likely involve a
	// call to a backend reservation service.
	s.logger().Info("booking hotel",
		zap.String("userId", req.UserID),
		zap.String("reservation", attrs[models.AttrCurrentReservation]),
	)

	if err := ConfirmReservation(attrs, reservation); err != nil {
		return models.Directive{}, err
	}

	return Close(attrs, models.FulfillmentStateFulfilled, models.Message{
		ContentType: models.ContentTypePlainText,
		Content: "Thanks, I have placed your reservation.   Please let me know if you would like to book a car " +
			"rental, or another hotel.",
	}), nil
}
