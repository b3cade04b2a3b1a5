package models

// Session attribute keys reserved by the fulfillment engine. The attribute
// bag itself is caller-owned; these are the only keys this service touches.
const (
	AttrCurrentReservation       = "currentReservation"
	AttrCurrentReservationPrice  = "currentReservationPrice"
	AttrLastConfirmedReservation = "lastConfirmedReservation"
)

// ReservationTypeHotel tags hotel reservation snapshots.
const ReservationTypeHotel = "Hotel"

// Reservation is the snapshot of the current slot values that gets
// serialized into the session attributes every turn, so the in-progress
// draft survives the platform's stateless request cycle.
type Reservation struct {
	ReservationType string   `json:"ReservationType"`
	Location        *string  `json:"Location"`
	RoomType        *string  `json:"RoomType"`
	CheckInDate     *string  `json:"CheckInDate"`
	Nights          *SlotInt `json:"Nights"`
}

// NewHotelReservation builds the reservation snapshot for the given slots.
func NewHotelReservation(slots SlotSet) Reservation {
	return Reservation{
		ReservationType: ReservationTypeHotel,
		Location:        slots.Location,
		RoomType:        slots.RoomType,
		CheckInDate:     slots.CheckInDate,
		Nights:          slots.Nights,
	}
}
