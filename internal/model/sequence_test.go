package model

import (
	"sync"
	"testing"
)

func TestIDSequence_StartsAtOne(t *testing.T) {
	s := NewIDSequence()
	if s.Peek() != 0 {
		t.Fatalf("expected Peek 0 before first Next, got %d", s.Peek())
	}
	if got := s.Next(); got != 1 {
		t.Fatalf("expected first id 1, got %d", got)
	}
	if s.Peek() != 1 {
		t.Fatalf("expected Peek 1, got %d", s.Peek())
	}
}

func TestIDSequence_NeverReusesAfterDeletion(t *testing.T) {
	seq := NewIDSequence()
	a := CreateCustomer(seq, "A", 1)
	list, _ := a.DeleteFrom([]*Customer{a})
	b := CreateCustomer(seq, "B", 2)
	if b.ID == a.ID {
		t.Fatalf("id %d reused after deletion", a.ID)
	}
	_ = list

	h := NewHotel(NewIDSequence(), 1, "H", "addr", 10)
	first, _ := h.ReserveRoom("2024-01-01", "2024-01-02", 1)
	h.CancelReservation(first)
	second, _ := h.ReserveRoom("2024-01-01", "2024-01-02", 1)
	if second == first {
		t.Fatalf("reservation id %d reused after cancel", first)
	}
}

func TestIDSequence_ConcurrentNextIsUnique(t *testing.T) {
	s := NewIDSequence()
	const workers, per = 8, 200
	ids := make(chan uint64, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				ids <- s.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[uint64]bool, workers*per)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*per {
		t.Fatalf("expected %d ids, got %d", workers*per, len(seen))
	}
}
