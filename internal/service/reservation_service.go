package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/model"
	q "github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// ReservationService books and cancels rooms and announces each change.
type ReservationService struct {
	log       *zap.Logger
	hotels    *repository.HotelRepo
	publisher EventPublisher // nil disables events
}

// NewReservationService constructs a ReservationService.  publisher may be nil.
func NewReservationService(hotels *repository.HotelRepo, publisher EventPublisher, log *zap.Logger) *ReservationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationService{log: log, hotels: hotels, publisher: publisher}
}

// Reserve books a stay at the hotel for customerID.  The customer id is not
// resolved against the customer registry.
func (s *ReservationService) Reserve(ctx context.Context, hotelID, customerID uint64, checkIn, checkOut string) (model.Reservation, error) {
	h, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := h.Book(checkIn, checkOut, customerID)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("reserve room in hotel %d: %w", hotelID, err)
	}
	s.log.Info("reservation created",
		zap.Uint64("reservation_id", res.ID),
		zap.Uint64("hotel_id", hotelID),
		zap.Uint64("customer_id", customerID))
	s.publish(ctx, q.ReservationCreatedQueue, res)
	return res, nil
}

// Cancel removes a reservation from the hotel.  It reports false, without
// an error, when the hotel holds no such reservation.
func (s *ReservationService) Cancel(ctx context.Context, hotelID, reservationID uint64) (bool, error) {
	h, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return false, err
	}
	res, found := h.Reservation(reservationID)
	if !found || !h.CancelReservation(reservationID) {
		return false, nil
	}
	s.log.Info("reservation cancelled",
		zap.Uint64("reservation_id", reservationID),
		zap.Uint64("hotel_id", hotelID))
	s.publish(ctx, q.ReservationCancelledQueue, res)
	return true, nil
}

// publish never fails the caller; broker problems are only logged.
func (s *ReservationService) publish(ctx context.Context, eventType string, res model.Reservation) {
	if s.publisher == nil {
		return
	}
	ev := q.NewReservationEvent(eventType, res)
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn("publish reservation event failed",
			zap.String("type", eventType),
			zap.String("event_id", ev.EventID),
			zap.Error(err))
	}
}
