// Standalone harness: replays the canonical BookHotel dialog event against
// the fulfillment service and prints the resulting directive.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"tripdesk/models"
	"tripdesk/services/fulfillment"

	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	nights := models.SlotInt(4)
	event := models.IntentRequest{
		MessageVersion:    "1.0",
		InvocationSource:  models.InvocationSourceDialogCodeHook,
		UserID:            "John",
		SessionAttributes: map[string]string{},
		Bot: &models.Bot{
			Name:    "BookTrip",
			Alias:   "$LATEST",
			Version: "$LATEST",
		},
		OutputDialogMode: "Text",
		CurrentIntent: models.Intent{
			Name: fulfillment.IntentBookHotel,
			Slots: models.SlotSet{
				Location:    strPtr("Chicago"),
				CheckInDate: strPtr("2030-11-08"),
				Nights:      &nights,
				RoomType:    strPtr("queen"),
			},
			ConfirmationStatus: "None",
		},
	}

	svc := &fulfillment.DefaultFulfillmentService{
		Hotel:  &fulfillment.DefaultHotelBookingService{Logger: logger},
		Logger: logger,
	}

	directive, err := svc.Dispatch(event)
	if err != nil {
		log.Fatalf("dispatch failed: %v", err)
	}

	out, err := json.MarshalIndent(directive, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal directive: %v", err)
	}
	fmt.Println(string(out))
}
