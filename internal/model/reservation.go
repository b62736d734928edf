package model

// Reservation is a booking record tying a stay to one hotel and one
// customer.  It is a passive value: dates are stored exactly as given and
// neither HotelID nor CustomerID is checked against existing entities.
//
// Fields:
//  ID           – identifier issued by the reservation IDSequence.
//  CheckInDate  – check-in date, expected as YYYY-MM-DD.
//  CheckOutDate – check-out date, expected as YYYY-MM-DD.
//  HotelID      – hotel the reservation belongs to.
//  CustomerID   – customer who made the booking.
type Reservation struct {
	ID           uint64 `json:"reservation_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	HotelID      uint64 `json:"hotel_id"`
	CustomerID   uint64 `json:"customer_id"`
}

// NewReservation builds a Reservation with the next identifier from seq.
func NewReservation(seq *IDSequence, checkIn, checkOut string, hotelID, customerID uint64) *Reservation {
	return &Reservation{
		ID:           seq.Next(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		HotelID:      hotelID,
		CustomerID:   customerID,
	}
}
