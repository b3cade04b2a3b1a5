package fulfillment

import (
	"errors"
	"testing"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFulfillmentService() *DefaultFulfillmentService {
	return &DefaultFulfillmentService{
		Hotel:  newTestHotelService(),
		Logger: zap.NewNop(),
	}
}

func TestDispatchRoutesBookHotel(t *testing.T) {
	svc := newTestFulfillmentService()

	directive, err := svc.Dispatch(bookHotelRequest(models.InvocationSourceDialogCodeHook, completeSlots()))
	require.NoError(t, err)
	assert.Equal(t, models.DialogActionDelegate, directive.DialogAction.Type)
}

func TestDispatchUnsupportedIntent(t *testing.T) {
	svc := newTestFulfillmentService()

	req := bookHotelRequest(models.InvocationSourceDialogCodeHook, models.SlotSet{})
	req.CurrentIntent.Name = "BookCar"

	_, err := svc.Dispatch(req)
	require.Error(t, err)

	var unsupported *UnsupportedIntentError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "BookCar", unsupported.Intent)
	assert.Contains(t, err.Error(), "unsupportedIntent")
}
