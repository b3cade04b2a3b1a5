package fulfillment

import "fmt"

type UnsupportedIntentError struct {
	Code   string
	Intent string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("%s: no handler registered for intent %q", e.Code, e.Intent)
}

func NewUnsupportedIntentError(intent string) error {
	return &UnsupportedIntentError{
		Code:   "unsupportedIntent",
		Intent: intent,
	}
}
