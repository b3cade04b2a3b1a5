package fulfillment

import "tripdesk/models"

// ElicitSlot re-prompts the user for a single slot with the given message.
func ElicitSlot(attrs map[string]string, intentName string, slots models.SlotSet, slotToElicit string, msg models.Message) models.Directive {
	return models.Directive{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:         models.DialogActionElicitSlot,
			IntentName:   intentName,
			Slots:        &slots,
			SlotToElicit: slotToElicit,
			Message:      &msg,
		},
	}
}

// Delegate defers to the platform's built-in elicitation and confirmation
// flow for the remaining slots.
func Delegate(attrs map[string]string, slots models.SlotSet) models.Directive {
	return models.Directive{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:  models.DialogActionDelegate,
			Slots: &slots,
		},
	}
}

// Close ends the conversation with the given fulfillment state and message.
func Close(attrs map[string]string, fulfillmentState string, msg models.Message) models.Directive {
	return models.Directive{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:             models.DialogActionClose,
			FulfillmentState: fulfillmentState,
			Message:          &msg,
		},
	}
}
