package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/model"
	q "github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []q.ReservationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev q.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func newTestService(pub EventPublisher) (*ReservationService, *repository.HotelRepo) {
	hotels := repository.NewHotelRepo(model.NewIDSequence())
	hotels.Create(1, "Example Hotel", "123 Main St", 100)
	return NewReservationService(hotels, pub, zap.NewNop()), hotels
}

func TestReservationService_ReserveAndCancel_PublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc, hotels := newTestService(pub)
	ctx := context.Background()

	res, err := svc.Reserve(ctx, 1, 42, "2024-03-01", "2024-03-05")
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if res.HotelID != 1 || res.CustomerID != 42 || res.CheckInDate != "2024-03-01" {
		t.Fatalf("unexpected reservation: %+v", res)
	}
	h, _ := hotels.GetByID(1)
	if h.Len() != 1 {
		t.Fatalf("expected 1 reservation, got %d", h.Len())
	}

	ok, err := svc.Cancel(ctx, 1, res.ID)
	if err != nil || !ok {
		t.Fatalf("Cancel: ok=%v err=%v", ok, err)
	}
	ok, err = svc.Cancel(ctx, 1, res.ID)
	if err != nil || ok {
		t.Fatalf("second Cancel: ok=%v err=%v", ok, err)
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}
	if pub.events[0].Type != q.ReservationCreatedQueue || pub.events[1].Type != q.ReservationCancelledQueue {
		t.Fatalf("unexpected event types: %s, %s", pub.events[0].Type, pub.events[1].Type)
	}
	if pub.events[1].ReservationID != res.ID || pub.events[1].CustomerID != 42 {
		t.Fatalf("cancel event lost reservation details: %+v", pub.events[1])
	}
}

func TestReservationService_PublishFailureDoesNotFailRequest(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, _ := newTestService(pub)
	if _, err := svc.Reserve(context.Background(), 1, 1, "2024-03-01", "2024-03-05"); err != nil {
		t.Fatalf("Reserve should ignore publish errors, got %v", err)
	}
}

func TestReservationService_NilPublisher(t *testing.T) {
	svc, _ := newTestService(nil)
	res, err := svc.Reserve(context.Background(), 1, 1, "2024-03-01", "2024-03-05")
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if ok, _ := svc.Cancel(context.Background(), 1, res.ID); !ok {
		t.Fatalf("expected cancel to succeed")
	}
}

func TestReservationService_UnknownHotel(t *testing.T) {
	svc, _ := newTestService(nil)
	if _, err := svc.Reserve(context.Background(), 9, 1, "a", "b"); !errors.Is(err, repository.ErrHotelNotFound) {
		t.Fatalf("Reserve: expected ErrHotelNotFound, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), 9, 1); !errors.Is(err, repository.ErrHotelNotFound) {
		t.Fatalf("Cancel: expected ErrHotelNotFound, got %v", err)
	}
}

func TestReservationService_DisposedHotel(t *testing.T) {
	svc, hotels := newTestService(nil)
	h, _ := hotels.GetByID(1)
	h.Delete()
	if _, err := svc.Reserve(context.Background(), 1, 1, "a", "b"); !errors.Is(err, model.ErrHotelDisposed) {
		t.Fatalf("expected ErrHotelDisposed, got %v", err)
	}
}
