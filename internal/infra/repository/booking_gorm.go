package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

// EnsureStaffSeeded inserts the roster only when the staff table is empty.
// It returns how many members were inserted.
func (r *BookingGormRepository) EnsureStaffSeeded(
	ctx context.Context,
	roster domain.Roster,
) (int, error) {

	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Staff{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		staff := make([]models.Staff, 0, len(roster))
		for _, m := range roster {
			staff = append(staff, models.Staff{ID: m.ID, Name: m.Name})
		}
		if len(staff) == 0 {
			return nil
		}
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		inserted = len(staff)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed staff: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return inserted, nil
}

func (r *BookingGormRepository) ListStaff(
	ctx context.Context,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("list staff: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return staff, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var s models.Staff
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		return nil, fmt.Errorf("get staff: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return &s, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// ListBookings returns the bookings of one staff member on the calendar day
// of date, ordered by start.
func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	staffID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND day = ?", staffID, timezone.DayKey(date)).
		Order("start_time ASC").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return bookings, nil
}

// CreateBooking inserts b as given. Overlap is the caller's concern.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if b.Day == "" {
		b.Day = timezone.DayKey(b.StartTime)
	}
	if err := r.db.WithContext(ctx).Omit("Staff").Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) (bool, error) {

	if id == 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete booking: %w: %w", domain.ErrStoreUnavailable, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
