package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/audit"
	"github.com/sharpfade/barber-booking/internal/clock"
	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/notify"
	"github.com/sharpfade/barber-booking/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID uint

	ClientUserID *uint
	ClientName   string
	ClientEmail  string
	ClientPhone  string

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é o guardião do caminho de escrita. A checagem de
// conflito daqui é um pre-flight sobre snapshot fresco; quem decide
// sob corrida é a constraint de exclusão do banco, que o repositório
// traduz para o mesmo slot_taken.
type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
	timezone string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		timezone: timezone,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Data / hora no relógio da barbearia
	// --------------------------------------------------
	date, err := clock.ParseDate(in.Date, uc.timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startMin, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Duração autoritativa vem da disponibilidade do dia,
	//    nunca do cliente (cliente "velho" não estica o slot)
	// --------------------------------------------------
	av, err := uc.repo.GetAvailability(ctx, in.BarberID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("no_availability")
		}
		return nil, err
	}
	if !av.Active {
		return nil, httperr.ErrBusiness("no_availability")
	}

	endMin := startMin + av.SlotDuration
	requested := schedule.NewInterval(startMin, endMin)

	// --------------------------------------------------
	// 3. Dentro do expediente do dia
	// --------------------------------------------------
	dayStart, err := schedule.ParseClock(av.StartTime)
	if err != nil {
		return nil, err
	}
	dayEnd, err := schedule.ParseClock(av.EndTime)
	if err != nil {
		return nil, err
	}
	if startMin < dayStart || endMin > dayEnd {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 4. Não agendar no passado
	// --------------------------------------------------
	now := clock.NowIn(uc.timezone)
	today := now.Format(clock.DateLayout)
	nowMin := now.Hour()*60 + now.Minute()

	if in.Date < today || (in.Date == today && startMin <= nowMin) {
		return nil, httperr.ErrBusiness("in_the_past")
	}

	// --------------------------------------------------
	// 5. Pre-flight: snapshot fresco dos ocupantes do dia
	// --------------------------------------------------
	occupying, err := uc.repo.ListOccupyingBookings(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	for _, b := range occupying {
		if requested.Overlaps(schedule.NewInterval(b.StartMinute, b.EndMinute)) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	// --------------------------------------------------
	// 6. Cliente (get or create, convidado permitido)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientUserID,
		in.ClientName,
		in.ClientEmail,
		in.ClientPhone,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Criação: a constraint do banco é a palavra final;
	//    a violação volta daqui como slot_taken
	// --------------------------------------------------
	b := &models.Booking{
		Reference:   uuid.NewString(),
		BarberID:    in.BarberID,
		ClientID:    client.ID,
		Date:        in.Date,
		StartMinute: startMin,
		EndMinute:   endMin,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	b.Client = *client

	// --------------------------------------------------
	// 8. Efeitos colaterais assíncronos: nada daqui pra baixo
	//    altera o resultado do agendamento
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ClientUserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notifier.Dispatch(notify.Message{
		BookingID:   b.ID,
		Reference:   b.Reference,
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ClientPhone: client.Phone,
		Date:        b.Date,
		StartTime:   schedule.FormatClock(startMin),
		EndTime:     schedule.FormatClock(endMin),
		Status:      b.Status,
		Notes:       b.Notes,
	})

	return b, nil
}
