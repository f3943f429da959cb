package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/audit"
	"github.com/sharpfade/barber-booking/internal/clock"
	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
)

type CancelBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCancelBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	timezone string,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		audit:    auditDispatcher,
		timezone: timezone,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	barberID uint,
	barberUserID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	now := clock.NowIn(uc.timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberUserID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
