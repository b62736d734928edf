package model

import "testing"

func TestNewReservation(t *testing.T) {
	seq := NewIDSequence()
	r := NewReservation(seq, "2024-03-01", "2024-03-05", 1, 1)
	if r.ID != 1 {
		t.Fatalf("expected id 1, got %d", r.ID)
	}
	if r.CheckInDate != "2024-03-01" || r.CheckOutDate != "2024-03-05" || r.HotelID != 1 || r.CustomerID != 1 {
		t.Fatalf("fields not stored verbatim: %+v", r)
	}
	// Neither hotel 999 nor customer 999 exists; construction still succeeds.
	r2 := NewReservation(seq, "", "", 999, 999)
	if r2.ID != 2 {
		t.Fatalf("expected id 2, got %d", r2.ID)
	}
}
