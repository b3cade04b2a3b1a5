package models

// ValidationResult reports the first slot value that failed a domain
// constraint. ViolatedSlot and Message are set iff IsValid is false.
type ValidationResult struct {
	IsValid      bool
	ViolatedSlot string
	Message      *Message
}
