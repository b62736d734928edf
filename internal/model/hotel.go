package model

import (
	"fmt"
	"strings"
	"sync"
)

// Hotel is the aggregate root of the reservation model.  It owns an
// insertion-ordered collection of reservations and issues reservation ids
// from the sequence it was built with.  The hotel id is assigned by the
// caller; nothing prevents two hotels from sharing one.
//
// All methods are safe for concurrent use.  After Delete the hotel is
// disposed: mutating methods return ErrHotelDisposed and CancelReservation
// reports false.
type Hotel struct {
	ID uint64 // caller-assigned identifier, immutable

	mu           sync.Mutex
	seq          *IDSequence
	name         string
	address      string
	stars        int
	capacity     int // maximum number of guests
	reservations []*Reservation
	disposed     bool
}

// HotelUpdate describes a partial change to a hotel.  A nil field leaves the
// matching attribute untouched; a non-nil field is applied even when it
// points at a zero value.
type HotelUpdate struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Stars    *int    `json:"stars"`
	Capacity *int    `json:"capacity"`
}

// HotelSnapshot is a point-in-time copy of a hotel, safe to hand to
// encoders and other goroutines.
type HotelSnapshot struct {
	ID           uint64        `json:"hotel_id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Stars        int           `json:"stars"`
	Capacity     int           `json:"capacity"`
	Reservations []Reservation `json:"reservations"`
}

// HotelSummary is the public view of a hotel.  It leaves out reservations
// and the customers they name.
type HotelSummary struct {
	ID       uint64 `json:"hotel_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Stars    int    `json:"stars"`
	Capacity int    `json:"capacity"`
}

// NewHotel builds a hotel with zero stars and no reservations.  Reservation
// ids are drawn from seq.
func NewHotel(seq *IDSequence, id uint64, name, address string, capacity int) *Hotel {
	return &Hotel{
		ID:           id,
		seq:          seq,
		name:         name,
		address:      address,
		capacity:     capacity,
		reservations: []*Reservation{},
	}
}

// CreateOrReplaceInfo overwrites all four descriptive attributes.
func (h *Hotel) CreateOrReplaceInfo(name, address string, stars, capacity int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return ErrHotelDisposed
	}
	h.name = name
	h.address = address
	h.stars = stars
	h.capacity = capacity
	return nil
}

// ModifyInfo applies the fields present in u.
func (h *Hotel) ModifyInfo(u HotelUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return ErrHotelDisposed
	}
	if u.Name != nil {
		h.name = *u.Name
	}
	if u.Address != nil {
		h.address = *u.Address
	}
	if u.Stars != nil {
		h.stars = *u.Stars
	}
	if u.Capacity != nil {
		h.capacity = *u.Capacity
	}
	return nil
}

// ReserveRoom records a stay for customerID and returns the new
// reservation id.  Dates are not parsed and availability is not checked.
func (h *Hotel) ReserveRoom(checkIn, checkOut string, customerID uint64) (uint64, error) {
	r, err := h.Book(checkIn, checkOut, customerID)
	return r.ID, err
}

// Book is ReserveRoom returning a copy of the reservation as it was stored.
func (h *Hotel) Book(checkIn, checkOut string, customerID uint64) (Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return Reservation{}, ErrHotelDisposed
	}
	r := NewReservation(h.seq, checkIn, checkOut, h.ID, customerID)
	h.reservations = append(h.reservations, r)
	return *r, nil
}

// AddReservation appends a reservation built elsewhere.  Duplicate ids are
// not detected.
func (h *Hotel) AddReservation(r *Reservation) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return ErrHotelDisposed
	}
	h.reservations = append(h.reservations, r)
	return nil
}

// CancelReservation removes the first reservation with the given id and
// reports whether one was found.
func (h *Hotel) CancelReservation(reservationID uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return false
	}
	for i, r := range h.reservations {
		if r.ID == reservationID {
			h.reservations = append(h.reservations[:i], h.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// Reservation returns a copy of the reservation with the given id.
func (h *Hotel) Reservation(reservationID uint64) (Reservation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.reservations {
		if r.ID == reservationID {
			return *r, true
		}
	}
	return Reservation{}, false
}

// Reservations returns copies of the current reservations in insertion order.
func (h *Hotel) Reservations() []Reservation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.copyReservations()
}

// Len returns the number of current reservations.
func (h *Hotel) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.reservations)
}

// Snapshot returns a copy of the hotel's current state.
func (h *Hotel) Snapshot() HotelSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HotelSnapshot{
		ID:           h.ID,
		Name:         h.name,
		Address:      h.address,
		Stars:        h.stars,
		Capacity:     h.capacity,
		Reservations: h.copyReservations(),
	}
}

// Summary returns the hotel's descriptive attributes without reservations.
func (h *Hotel) Summary() HotelSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HotelSummary{
		ID:       h.ID,
		Name:     h.name,
		Address:  h.address,
		Stars:    h.stars,
		Capacity: h.capacity,
	}
}

// DisplayInfo renders the hotel and its reservations as human-readable
// lines.  Each reservation line is "id,customer,check-in,check-out".
func (h *Hotel) DisplayInfo() string {
	s := h.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Hotel ID: %d\n", s.ID)
	fmt.Fprintf(&b, "Hotel: %s\n", s.Name)
	fmt.Fprintf(&b, "Address: %s\n", s.Address)
	fmt.Fprintf(&b, "Stars: %d\n", s.Stars)
	fmt.Fprintf(&b, "Capacity: %d guests\n", s.Capacity)
	b.WriteString("Reservations:\n")
	for _, r := range s.Reservations {
		fmt.Fprintf(&b, "%d,%d,%s,%s\n", r.ID, r.CustomerID, r.CheckInDate, r.CheckOutDate)
	}
	return b.String()
}

// Delete disposes the hotel and drops its reservations.  Calling it more
// than once is harmless.
func (h *Hotel) Delete() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.disposed = true
	h.reservations = nil
}

// Disposed reports whether Delete has been called.
func (h *Hotel) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// copyReservations must be called with h.mu held.
func (h *Hotel) copyReservations() []Reservation {
	out := make([]Reservation, 0, len(h.reservations))
	for _, r := range h.reservations {
		out = append(out, *r)
	}
	return out
}
