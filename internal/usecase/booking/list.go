package booking

import (
	"context"

	"github.com/sharpfade/barber-booking/internal/clock"
	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/dto"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/schedule"
)

// Visões do painel: hoje, próximos, todos.

type ListBookings struct {
	repo     domain.Repository
	timezone string
}

func NewListBookings(repo domain.Repository, timezone string) *ListBookings {
	return &ListBookings{repo: repo, timezone: timezone}
}

func (uc *ListBookings) ByDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsByDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func (uc *ListBookings) Upcoming(
	ctx context.Context,
	barberID uint,
) ([]dto.BookingListDTO, error) {

	today := clock.TodayIn(uc.timezone)

	bookings, err := uc.repo.ListBookingsFrom(ctx, barberID, today)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func (uc *ListBookings) All(
	ctx context.Context,
	barberID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListAllBookings(ctx, barberID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			Date:        b.Date,
			StartTime:   schedule.FormatClock(b.StartMinute),
			EndTime:     schedule.FormatClock(b.EndMinute),
			Status:      b.Status,
			ClientName:  b.Client.Name,
			ClientEmail: b.Client.Email,
			ClientPhone: b.Client.Phone,
			Notes:       b.Notes,
		})
	}
	return out
}
