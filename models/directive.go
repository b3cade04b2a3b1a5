package models

// Dialog action types understood by the platform.
const (
	DialogActionElicitSlot = "ElicitSlot"
	DialogActionDelegate   = "Delegate"
	DialogActionClose      = "Close"
)

// FulfillmentStateFulfilled closes the conversation as successfully booked.
const FulfillmentStateFulfilled = "Fulfilled"

// ContentTypePlainText is the only message content type the bot emits.
const ContentTypePlainText = "PlainText"

// Directive is the single instruction returned to the platform for a turn.
// It always echoes the session attributes so the caller can round-trip them.
type Directive struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// DialogAction carries the variant-specific payload of a directive.
type DialogAction struct {
	Type             string   `json:"type"`
	IntentName       string   `json:"intentName,omitempty"`
	Slots            *SlotSet `json:"slots,omitempty"`
	SlotToElicit     string   `json:"slotToElicit,omitempty"`
	FulfillmentState string   `json:"fulfillmentState,omitempty"`
	Message          *Message `json:"message,omitempty"`
}

// Message is a prompt shown to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}
