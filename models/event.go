package models

// Invocation sources sent by the dialog platform. Anything other than
// DialogCodeHook means the user has confirmed and the intent should be
// fulfilled.
const InvocationSourceDialogCodeHook = "DialogCodeHook"

// IntentRequest is one conversation turn as delivered by the dialog platform.
type IntentRequest struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  string            `json:"invocationSource"`
	UserID            string            `json:"userId"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	Bot               *Bot              `json:"bot,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	CurrentIntent     Intent            `json:"currentIntent"`
}

// Intent carries the intent name and the slot values gathered so far.
type Intent struct {
	Name               string  `json:"name"`
	Slots              SlotSet `json:"slots"`
	ConfirmationStatus string  `json:"confirmationStatus,omitempty"`
}

// Bot identifies the bot configuration that produced the event.
type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias"`
	Version string `json:"version"`
}
