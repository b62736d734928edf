// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Queue names.  Each queue is durable and carries one event type.
const (
	ReservationCreatedQueue   = "reservation.created"
	ReservationCancelledQueue = "reservation.cancelled"
)

// ReservationEvent is published when a reservation is created or cancelled.
// It carries enough information for downstream consumers to log or notify
// without calling back into the service.
type ReservationEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"` // queue name the event was published to
	ReservationID uint64 `json:"reservation_id"`
	HotelID       uint64 `json:"hotel_id"`
	CustomerID    uint64 `json:"customer_id"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	OccurredAt    string `json:"occurred_at"`
}

// NewReservationEvent builds an event of the given type for r, stamped with
// a fresh event id and the current UTC time.
func NewReservationEvent(eventType string, r model.Reservation) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: r.ID,
		HotelID:       r.HotelID,
		CustomerID:    r.CustomerID,
		CheckInDate:   r.CheckInDate,
		CheckOutDate:  r.CheckOutDate,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
