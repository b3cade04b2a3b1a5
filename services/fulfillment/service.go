package fulfillment

import (
	"tripdesk/models"

	"go.uber.org/zap"
)

// Intent names recognized by the router.
const IntentBookHotel = "BookHotel"

// FulfillmentService routes a platform event to the matching intent handler.
type FulfillmentService interface {
	Dispatch(req models.IntentRequest) (models.Directive, error)
}

// DefaultFulfillmentService implements FulfillmentService.
type DefaultFulfillmentService struct {
	Hotel  HotelBookingService
	Logger *zap.Logger
}

// Dispatch selects the intent handler by intent name. Events for intents
// without a registered handler are rejected with an UnsupportedIntentError
// rather than silently producing no directive.
func (s *DefaultFulfillmentService) Dispatch(req models.IntentRequest) (models.Directive, error) {
	if s.Logger != nil {
		s.Logger.Info("dispatching intent",
			zap.String("userId", req.UserID),
			zap.String("intentName", req.CurrentIntent.Name),
			zap.String("invocationSource", req.InvocationSource),
		)
	}

	switch req.CurrentIntent.Name {
	case IntentBookHotel:
		return s.Hotel.BookHotel(req)
	default:
		return models.Directive{}, NewUnsupportedIntentError(req.CurrentIntent.Name)
	}
}
