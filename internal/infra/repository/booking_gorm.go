package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/sharpfade/barber-booking/internal/domain/booking"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.BarberProfile, error) {

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetFirstBarber(
	ctx context.Context,
) (*models.BarberProfile, error) {

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.Availability, error) {

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&av).Error; err != nil {
		return nil, err
	}

	return &av, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	userID *uint,
	name string,
	email string,
	phone string,
) (*models.Client, error) {

	var client models.Client

	q := r.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	} else if email != "" {
		q = q.Where("user_id IS NULL AND email = ?", email)
	} else {
		q = q.Where("user_id IS NULL AND phone = ? AND phone <> ''", phone)
	}

	err := q.First(&client).Error
	if err == nil {
		// contato mais recente vence
		client.Name = name
		if email != "" {
			client.Email = email
		}
		if phone != "" {
			client.Phone = phone
		}
		if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		UserID: userID,
		Name:   name,
		Email:  email,
		Phone:  phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) ListOccupyingBookings(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "start_minute", "end_minute", "status").
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, date, domain.OccupyingStatuses,
		).
		Order("start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isOverlapViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}

	return nil
}

// isOverlapViolation reconhece a rejeição da constraint de exclusão
// (ou de índice único) do Postgres. Ela é a autoridade final: dois
// writers podem passar pelo pre-flight da aplicação, mas só um insert
// sobrevive.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 23P01 exclusion_violation, 23505 unique_violation
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForBarber(
	ctx context.Context,
	bookingID uint,
	barberID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND barber_id = ?", bookingID, barberID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Booking (listing)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsFrom(
	ctx context.Context,
	barberID uint,
	fromDate string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barber_id = ? AND date >= ?", barberID, fromDate).
		Order("date ASC, start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
	barberID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barber_id = ?", barberID).
		Order("date ASC, start_minute ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
