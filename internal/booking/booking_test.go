package booking_test

import (
	"errors"
	"testing"

	"ferresur/internal/booking"
	"ferresur/internal/store"
)

func newService(t *testing.T) *booking.Service {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return booking.NewService(booking.NewRepo(db))
}

func TestBookAndList(t *testing.T) {
	svc := newService(t)
	a, err := svc.Book("Ana", "+57 3001112233", "instalación eléctrica", "2026-09-01T10:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == "" || a.Status != "PLACED" {
		t.Fatalf("unexpected appointment: %+v", a)
	}

	list, err := svc.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != a.ID {
		t.Fatalf("unexpected listing: %+v", list)
	}
}

func TestBookSlotConflict(t *testing.T) {
	svc := newService(t)
	slot := "2026-09-01T10:00:00Z"
	if _, err := svc.Book("Ana", "+57 3001112233", "plomería", slot); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Book("Luis", "+57 3004445566", "plomería", slot); !errors.Is(err, booking.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	svc := newService(t)
	slot := "2026-09-01T10:00:00Z"
	a, err := svc.Book("Ana", "+57 3001112233", "plomería", slot)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Cancel(a.ID); err != nil {
		t.Fatal(err)
	}
	// Cancelled bookings release the slot.
	if _, err := svc.Book("Luis", "+57 3004445566", "plomería", slot); err != nil {
		t.Fatalf("slot should be free after cancel: %v", err)
	}
	// Cancelling twice reports not found.
	if err := svc.Cancel(a.ID); !errors.Is(err, booking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat cancel, got %v", err)
	}
}

func TestCancelUnknown(t *testing.T) {
	svc := newService(t)
	if err := svc.Cancel("no-such-id"); !errors.Is(err, booking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
