package repository

import (
	"sync"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// HotelRepo is the in-memory registry of hotels.  Hotel ids are chosen by
// the caller and are not required to be unique; lookups by id return the
// earliest registered hotel that carries it.  All hotels created through a
// repo draw reservation ids from the same sequence.
type HotelRepo struct {
	mu     sync.RWMutex
	seq    *model.IDSequence // reservation ids
	hotels []*model.Hotel    // registration order
}

// NewHotelRepo constructs an empty HotelRepo issuing reservation ids from seq.
func NewHotelRepo(seq *model.IDSequence) *HotelRepo {
	return &HotelRepo{seq: seq}
}

// Create builds and registers a hotel.  A hotel id that is already in use
// is accepted.
func (r *HotelRepo) Create(id uint64, name, address string, capacity int) *model.Hotel {
	h := model.NewHotel(r.seq, id, name, address, capacity)
	r.mu.Lock()
	r.hotels = append(r.hotels, h)
	r.mu.Unlock()
	return h
}

// GetByID returns the first registered hotel with the given id.
func (r *HotelRepo) GetByID(id uint64) (*model.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, ErrHotelNotFound
}

// List returns the registered hotels in registration order.
func (r *HotelRepo) List() []*model.Hotel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Hotel, len(r.hotels))
	copy(out, r.hotels)
	return out
}

// Delete disposes the first hotel with the given id and unregisters it.
// Its reservations are released with it.
func (r *HotelRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.hotels {
		if h.ID == id {
			h.Delete()
			r.hotels = append(r.hotels[:i], r.hotels[i+1:]...)
			return nil
		}
	}
	return ErrHotelNotFound
}

// FindReservation searches every hotel for the reservation id.  This is a
// linear scan over hotels and their reservations.
func (r *HotelRepo) FindReservation(reservationID uint64) (model.Reservation, error) {
	for _, h := range r.List() {
		if res, ok := h.Reservation(reservationID); ok {
			return res, nil
		}
	}
	return model.Reservation{}, ErrReservationNotFound
}
