package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Staff --------
	EnsureStaffSeeded(
		ctx context.Context,
		roster Roster,
	) (int, error)

	ListStaff(
		ctx context.Context,
	) ([]models.Staff, error)

	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	// -------- Bookings --------
	ListBookings(
		ctx context.Context,
		staffID uint,
		date time.Time,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) (bool, error)
}

// Snapshot reduces stored bookings to the intervals the engine needs.
func Snapshot(bookings []models.Booking) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Interval{Start: b.StartTime, End: b.EndTime})
	}
	return out
}
