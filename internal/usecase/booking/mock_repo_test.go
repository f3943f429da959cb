package booking

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/schedule"
)

// ── repositório fake em memória ──
//
// CreateBooking emula a constraint de exclusão do Postgres: qualquer
// intervalo ocupante sobreposto já gravado rejeita o insert, mesmo que
// o pre-flight do use case tenha passado.

type availKey struct {
	barberID uint
	weekday  int
}

type mockRepo struct {
	barbers      map[uint]*models.BarberProfile
	availability map[availKey]*models.Availability
	clients      map[uint]*models.Client
	bookings     []models.Booking

	nextID uint

	listErr   error
	createErr error

	listCalls   int
	createCalls int

	// executado entre o pre-flight do chamador e o insert, para
	// simular um segundo writer ganhando a corrida
	beforeCreate func(r *mockRepo)
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		barbers:      map[uint]*models.BarberProfile{},
		availability: map[availKey]*models.Availability{},
		clients:      map[uint]*models.Client{},
		nextID:       1,
	}
}

func (r *mockRepo) setAvailability(barberID uint, weekday int, av models.Availability) {
	av.BarberID = barberID
	av.Weekday = weekday
	r.availability[availKey{barberID, weekday}] = &av
}

func (r *mockRepo) addBooking(barberID uint, date string, start, end int, status string) {
	r.bookings = append(r.bookings, models.Booking{
		ID:          r.nextID,
		BarberID:    barberID,
		Date:        date,
		StartMinute: start,
		EndMinute:   end,
		Status:      status,
	})
	r.nextID++
}

func (r *mockRepo) GetBarberByID(_ context.Context, id uint) (*models.BarberProfile, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockRepo) GetFirstBarber(_ context.Context) (*models.BarberProfile, error) {
	for _, b := range r.barbers {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockRepo) GetAvailability(_ context.Context, barberID uint, weekday int) (*models.Availability, error) {
	if av, ok := r.availability[availKey{barberID, weekday}]; ok {
		return av, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockRepo) GetOrCreateClient(
	_ context.Context,
	userID *uint,
	name string,
	email string,
	phone string,
) (*models.Client, error) {

	c := &models.Client{
		ID:     r.nextID,
		UserID: userID,
		Name:   name,
		Email:  email,
		Phone:  phone,
	}
	r.nextID++
	r.clients[c.ID] = c
	return c, nil
}

func (r *mockRepo) ListOccupyingBookings(_ context.Context, barberID uint, date string) ([]models.Booking, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.Date == date && domain.IsOccupying(domain.Status(b.Status)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *mockRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}

	if r.beforeCreate != nil {
		hook := r.beforeCreate
		r.beforeCreate = nil
		hook(r)
	}

	requested := schedule.NewInterval(b.StartMinute, b.EndMinute)
	for _, existing := range r.bookings {
		if existing.BarberID != b.BarberID || existing.Date != b.Date {
			continue
		}
		if !domain.IsOccupying(domain.Status(existing.Status)) {
			continue
		}
		if requested.Overlaps(schedule.NewInterval(existing.StartMinute, existing.EndMinute)) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *mockRepo) GetBookingForBarber(_ context.Context, bookingID uint, barberID uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == bookingID && r.bookings[i].BarberID == barberID {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockRepo) ListBookingsByDate(_ context.Context, barberID uint, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *mockRepo) ListBookingsFrom(_ context.Context, barberID uint, fromDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.Date >= fromDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *mockRepo) ListAllBookings(_ context.Context, barberID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*mockRepo)(nil)
