package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sharpfade/barber-booking/internal/audit"
	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/notify"
)

// ── helpers ──

type noopAuditSink struct{}

func (noopAuditSink) Log(*uint, string, string, *uint, any) error { return nil }

type failingSender struct{}

func (failingSender) Send(notify.Message) error { return errors.New("smtp down") }

func newCreateUC(repo *mockRepo) *CreateBooking {
	logger := zap.NewNop()
	return NewCreateBooking(
		repo,
		audit.NewDispatcher(noopAuditSink{}, logger),
		notify.NewDispatcher(notify.NewLogSender(logger), logger),
		"UTC",
	)
}

// data futura fixa, bem depois de qualquer "hoje" plausível
const futureDate = "2033-06-08"

func futureWeekday() int {
	d, _ := time.Parse("2006-01-02", futureDate)
	return int(d.Weekday())
}

func standardAvailability() models.Availability {
	return models.Availability{
		StartTime:    "09:00",
		EndTime:      "17:00",
		SlotDuration: 30,
		BufferTime:   0,
		Active:       true,
	}
}

func createInput(timeStr string) CreateBookingInput {
	return CreateBookingInput{
		BarberID:    1,
		ClientName:  "John Doe",
		ClientEmail: "john@example.com",
		Date:        futureDate,
		Time:        timeStr,
	}
}

// ── testes ──

func TestCreateBooking_Accept(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())

	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), createInput("10:00"))
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}

	if b.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want confirmed (auto-confirm on create)", b.Status)
	}
	if b.StartMinute != 600 || b.EndMinute != 630 {
		t.Errorf("interval = [%d,%d), want [600,630)", b.StartMinute, b.EndMinute)
	}
	if b.Reference == "" {
		t.Error("booking should get a reference")
	}
	if repo.listCalls != 1 {
		t.Errorf("expected one fresh occupancy read, got %d", repo.listCalls)
	}
}

func TestCreateBooking_DurationComesFromAvailability(t *testing.T) {
	repo := newMockRepo()
	av := standardAvailability()
	av.SlotDuration = 45
	repo.setAvailability(1, futureWeekday(), av)

	uc := newCreateUC(repo)

	// o cliente só manda o início; a duração vem sempre da configuração
	b, err := uc.Execute(context.Background(), createInput("09:00"))
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	if b.EndMinute-b.StartMinute != 45 {
		t.Errorf("duration = %d, want 45", b.EndMinute-b.StartMinute)
	}
}

func TestCreateBooking_RejectsOverlap(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())
	repo.addBooking(1, futureDate, 600, 630, string(domain.StatusConfirmed))

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), createInput("10:00"))
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("pre-flight rejection must not reach the insert")
	}
}

func TestCreateBooking_TouchingBoundaryIsNotOverlap(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())
	repo.addBooking(1, futureDate, 600, 630, string(domain.StatusConfirmed))

	uc := newCreateUC(repo)

	// 10:30 começa exatamente onde o outro termina
	if _, err := uc.Execute(context.Background(), createInput("10:30")); err != nil {
		t.Fatalf("back-to-back booking should be accepted, got %v", err)
	}
}

func TestCreateBooking_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())
	repo.addBooking(1, futureDate, 600, 630, string(domain.StatusCancelled))
	repo.addBooking(1, futureDate, 660, 690, string(domain.StatusCompleted))

	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), createInput("10:00")); err != nil {
		t.Errorf("cancelled booking should not block: %v", err)
	}
	if _, err := uc.Execute(context.Background(), createInput("11:00")); err != nil {
		t.Errorf("completed booking should not block: %v", err)
	}
}

func TestCreateBooking_RaceLoserRejectedByConstraint(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())

	// o segundo writer grava o mesmo slot entre o nosso pre-flight e o
	// insert; o pre-flight passa, mas a "constraint" do repositório
	// rejeita: exatamente um vencedor
	repo.beforeCreate = func(r *mockRepo) {
		r.addBooking(1, futureDate, 600, 630, string(domain.StatusConfirmed))
	}

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), createInput("10:00"))
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("constraint rejection must surface as slot_taken, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Errorf("insert should have been attempted once, got %d", repo.createCalls)
	}

	occupying, _ := repo.ListOccupyingBookings(context.Background(), 1, futureDate)
	if len(occupying) != 1 {
		t.Errorf("exactly one booking may hold the slot, found %d", len(occupying))
	}
}

func TestCreateBooking_NoAvailabilityIsDistinctFromSlotTaken(t *testing.T) {
	repo := newMockRepo()

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), createInput("10:00"))
	if !httperr.IsBusiness(err, "no_availability") {
		t.Fatalf("expected no_availability, got %v", err)
	}

	// dia configurado mas desativado conta como sem expediente
	av := standardAvailability()
	av.Active = false
	repo.setAvailability(1, futureWeekday(), av)

	_, err = uc.Execute(context.Background(), createInput("10:00"))
	if !httperr.IsBusiness(err, "no_availability") {
		t.Fatalf("inactive day: expected no_availability, got %v", err)
	}
}

func TestCreateBooking_OutsideWorkingHours(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())

	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), createInput("08:00")); !httperr.IsBusiness(err, "outside_working_hours") {
		t.Errorf("before opening: expected outside_working_hours, got %v", err)
	}
	// 16:45 + 30min estoura o fechamento das 17:00
	if _, err := uc.Execute(context.Background(), createInput("16:45")); !httperr.IsBusiness(err, "outside_working_hours") {
		t.Errorf("past closing: expected outside_working_hours, got %v", err)
	}
}

func TestCreateBooking_RejectsPastDate(t *testing.T) {
	repo := newMockRepo()
	past, _ := time.Parse("2006-01-02", "2020-03-02")
	repo.setAvailability(1, int(past.Weekday()), standardAvailability())

	uc := newCreateUC(repo)

	in := createInput("10:00")
	in.Date = "2020-03-02"

	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "in_the_past") {
		t.Errorf("expected in_the_past, got %v", err)
	}
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())

	uc := newCreateUC(repo)

	in := createInput("10:00")
	in.Date = "08/06/2033"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Errorf("bad date: expected invalid_date_or_time, got %v", err)
	}

	in = createInput("25:99")
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Errorf("bad time: expected invalid_date_or_time, got %v", err)
	}
}

func TestCreateBooking_UpstreamReadFailureIsNotSlotTaken(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())
	repo.listErr = errors.New("connection refused")

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), createInput("10:00"))
	if err == nil {
		t.Fatal("read failure must never become a silent accept")
	}
	if _, isBusiness := httperr.BusinessCode(err); isBusiness {
		t.Errorf("infrastructure failure should not map to a business code, got %v", err)
	}
}

func TestCreateBooking_NotificationFailureDoesNotAffectResult(t *testing.T) {
	repo := newMockRepo()
	repo.setAvailability(1, futureWeekday(), standardAvailability())

	logger := zap.NewNop()
	uc := NewCreateBooking(
		repo,
		audit.NewDispatcher(noopAuditSink{}, logger),
		notify.NewDispatcher(failingSender{}, logger),
		"UTC",
	)

	b, err := uc.Execute(context.Background(), createInput("10:00"))
	if err != nil {
		t.Fatalf("notification failure must not fail the booking: %v", err)
	}
	if b.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
}
