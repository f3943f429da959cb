package booking

import (
	"testing"
	"time"

	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
)

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusConfirmed {
		t.Errorf("initial status = %s, want confirmed", InitialStatus())
	}
}

func TestIsOccupying(t *testing.T) {
	cases := map[Status]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
	}
	for status, want := range cases {
		if got := IsOccupying(status); got != want {
			t.Errorf("IsOccupying(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusConfirmed)}
	if err := Cancel(b, now); err != nil {
		t.Fatalf("cancel of confirmed booking failed: %v", err)
	}
	if b.Status != string(StatusCancelled) || b.CancelledAt == nil {
		t.Errorf("booking not cancelled: status=%s cancelledAt=%v", b.Status, b.CancelledAt)
	}

	// estados terminais não transicionam
	for _, terminal := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(terminal)}
		err := Cancel(b, now)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("cancel from %s: expected invalid_state, got %v", terminal, err)
		}
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPending)}
	if err := Complete(b, now); err != nil {
		t.Fatalf("complete of pending booking failed: %v", err)
	}
	if b.Status != string(StatusCompleted) || b.CompletedAt == nil {
		t.Errorf("booking not completed: status=%s completedAt=%v", b.Status, b.CompletedAt)
	}

	b = &models.Booking{Status: string(StatusCancelled)}
	if err := Complete(b, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("complete from cancelled: expected invalid_state, got %v", err)
	}
}
