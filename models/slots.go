package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Slot names collected for a hotel reservation.
const (
	SlotLocation    = "Location"
	SlotCheckInDate = "CheckInDate"
	SlotNights      = "Nights"
	SlotRoomType    = "RoomType"
)

// SlotSet holds the slot values for the BookHotel intent. A nil field means
// the platform has not collected that slot yet; nil slots are skipped by
// validation so native elicitation keeps asking for them.
type SlotSet struct {
	Location    *string  `json:"Location"`
	CheckInDate *string  `json:"CheckInDate"`
	Nights      *SlotInt `json:"Nights"`
	RoomType    *string  `json:"RoomType"`
}

// Complete reports whether every slot has a value.
func (s SlotSet) Complete() bool {
	return s.Location != nil && s.CheckInDate != nil && s.Nights != nil && s.RoomType != nil
}

// Clear nils the named slot so the platform elicits it again.
func (s *SlotSet) Clear(name string) {
	switch name {
	case SlotLocation:
		s.Location = nil
	case SlotCheckInDate:
		s.CheckInDate = nil
	case SlotNights:
		s.Nights = nil
	case SlotRoomType:
		s.RoomType = nil
	}
}

// SlotInt is an integer slot value. The platform delivers numeric slots
// either as JSON numbers or as quoted strings, so both are accepted.
type SlotInt int

func (n *SlotInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("slot value %q is not an integer", raw)
	}
	*n = SlotInt(v)
	return nil
}

func (n SlotInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

// Int returns the plain integer value.
func (n SlotInt) Int() int {
	return int(n)
}
