package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/schedule"
)

type GetDaySlots struct {
	repo domain.Repository
}

func NewGetDaySlots(repo domain.Repository) *GetDaySlots {
	return &GetDaySlots{repo: repo}
}

// Execute calcula os horários candidatos do dia. Dia sem configuração
// ativa vira o erro de negócio "no_availability": a UI mostra "sem
// expediente", que não é a mesma coisa que "tudo ocupado" (lista cheia
// de slots indisponíveis) nem "janela curta demais" (lista vazia).
func (uc *GetDaySlots) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]schedule.Slot, error) {

	weekday := int(date.Weekday())

	av, err := uc.repo.GetAvailability(ctx, barberID, weekday)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("no_availability")
		}
		return nil, err
	}

	if !av.Active {
		return nil, httperr.ErrBusiness("no_availability")
	}

	startMin, err := schedule.ParseClock(av.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := schedule.ParseClock(av.EndTime)
	if err != nil {
		return nil, err
	}

	dateStr := date.Format("2006-01-02")

	occupying, err := uc.repo.ListOccupyingBookings(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(occupying))
	for _, b := range occupying {
		intervals = append(intervals, schedule.NewInterval(b.StartMinute, b.EndMinute))
	}

	cfg := schedule.DayConfig{
		StartMinute:  startMin,
		EndMinute:    endMin,
		SlotDuration: av.SlotDuration,
		BufferTime:   av.BufferTime,
		Active:       av.Active,
	}

	return schedule.GenerateSlots(cfg, intervals), nil
}
