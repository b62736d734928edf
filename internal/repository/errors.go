// Package repository keeps the process-local registries of hotels and
// customers.  Nothing here outlives the process.  The sentinel values below
// let higher layers such as handlers tell failure scenarios apart: for
// example ErrHotelNotFound maps to HTTP 404, while model.ErrHotelDisposed
// surfaces when a caller still holds a hotel that has been deleted.
package repository

import "errors"

// ErrHotelNotFound is returned when no live hotel carries the requested id.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrReservationNotFound is returned when no hotel holds the requested
// reservation.
var ErrReservationNotFound = errors.New("reservation not found")
