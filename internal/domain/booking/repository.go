package booking

import (
	"context"

	"github.com/sharpfade/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.BarberProfile, error)

	GetFirstBarber(
		ctx context.Context,
	) (*models.BarberProfile, error)

	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.Availability, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		userID *uint,
		name string,
		email string,
		phone string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// ListOccupyingBookings retorna snapshot fresco dos agendamentos
	// pending|confirmed do dia, em ordem cronológica.
	ListOccupyingBookings(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	// CreateBooking devolve httperr "slot_taken" quando a constraint de
	// exclusão do banco rejeita o intervalo.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (listing) --------
	ListBookingsByDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsFrom(
		ctx context.Context,
		barberID uint,
		fromDate string,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
		barberID uint,
	) ([]models.Booking, error)
}
