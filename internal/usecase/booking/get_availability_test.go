package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func times(a *Availability) []string {
	out := make([]string, 0, len(a.Slots))
	for _, s := range a.Slots {
		out = append(out, s.Time)
	}
	return out
}

func TestGetAvailability_SingleStaff(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetStaff", mock.Anything, uint(1)).Return(&models.Staff{ID: 1, Name: "Salvatore"}, nil)
	repo.On("ListBookings", mock.Anything, uint(1), mock.Anything).
		Return([]models.Booking{booked(1, "2026-10-21", "15:00", 45)}, nil)

	uc := NewGetAvailability(repo, testShop(), false, logger.Discard())

	got, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:    "2026-10-21",
		Service: "Taglio Uomo",
		StaffID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-21", got.Date)
	assert.Equal(t, 30, got.DurationMin)
	assert.Equal(t, []string{
		"08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
		"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00",
	}, times(got))
	assert.Equal(t, "08:30", got.Slots[0].Label)
	assert.Equal(t, got.Slots[0].Start.Add(30*time.Minute), got.Slots[0].End)

	repo.AssertExpectations(t)
}

func TestGetAvailability_AnyStaffMergesAndLabels(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListStaff", mock.Anything).Return(staffRows(), nil)
	repo.On("ListBookings", mock.Anything, uint(1), mock.Anything).
		Return([]models.Booking{booked(1, "2026-10-21", "08:30", 30)}, nil)
	repo.On("ListBookings", mock.Anything, uint(2), mock.Anything).
		Return([]models.Booking{}, nil)

	uc := NewGetAvailability(repo, testShop(), false, logger.Discard())

	got, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:    "2026-10-21",
		Service: "Taglio Uomo",
	})
	require.NoError(t, err)

	// 17 for Raffaele, 16 for Salvatore
	require.Len(t, got.Slots, 33)
	assert.Equal(t, "08:30 con Raffaele", got.Slots[0].Label)
	assert.Equal(t, "09:00 con Raffaele", got.Slots[1].Label)
	assert.Equal(t, "09:00 con Salvatore", got.Slots[2].Label)

	for i := 1; i < len(got.Slots); i++ {
		assert.False(t, got.Slots[i].Start.Before(got.Slots[i-1].Start), "slots must be sorted by start")
	}
}

func TestGetAvailability_TodaySkipsStartedSlots(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetStaff", mock.Anything, uint(2)).Return(&models.Staff{ID: 2, Name: "Raffaele"}, nil)
	repo.On("ListBookings", mock.Anything, uint(2), mock.Anything).Return([]models.Booking{}, nil)

	uc := NewGetAvailability(repo, testShop(), false, logger.Discard())

	got, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:    "2026-10-20",
		Service: "Barba",
		StaffID: 2,
	})
	require.NoError(t, err)

	require.Len(t, got.Slots, 13)
	assert.Equal(t, "10:30", got.Slots[0].Time)
	assert.Equal(t, "19:00", got.Slots[len(got.Slots)-1].Time)
}

func TestGetAvailability_ReadFailure(t *testing.T) {
	readErr := fmt.Errorf("list bookings: %w: %w", domain.ErrStoreUnavailable, errors.New("connection reset"))

	newRepo := func() *MockRepository {
		repo := new(MockRepository)
		repo.On("GetStaff", mock.Anything, uint(1)).Return(&models.Staff{ID: 1, Name: "Salvatore"}, nil)
		repo.On("ListBookings", mock.Anything, uint(1), mock.Anything).Return(nil, readErr)
		return repo
	}
	in := AvailabilityInput{Date: "2026-10-21", Service: "Taglio Uomo", StaffID: 1}

	t.Run("soft fail treats the day as empty", func(t *testing.T) {
		uc := NewGetAvailability(newRepo(), testShop(), false, logger.Discard())

		got, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.Len(t, got.Slots, 17)
	})

	t.Run("strict reads surface the error", func(t *testing.T) {
		uc := NewGetAvailability(newRepo(), testShop(), true, logger.Discard())

		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestGetAvailability_Rejections(t *testing.T) {
	cases := []struct {
		name string
		in   AvailabilityInput
		code string
	}{
		{"bad date", AvailabilityInput{Date: "21/10/2026", Service: "Barba"}, "invalid_date"},
		{"sunday", AvailabilityInput{Date: "2026-10-25", Service: "Barba"}, "closed_day"},
		{"monday", AvailabilityInput{Date: "2026-10-19", Service: "Barba"}, "closed_day"},
		{"past", AvailabilityInput{Date: "2026-10-17", Service: "Barba"}, "date_in_past"},
		{"unknown service", AvailabilityInput{Date: "2026-10-21", Service: "Permanente"}, "service_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewGetAvailability(new(MockRepository), testShop(), false, logger.Discard())

			_, err := uc.Execute(context.Background(), tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestGetAvailability_UnknownStaff(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetStaff", mock.Anything, uint(9)).Return(nil, httperr.ErrBusiness("staff_not_found"))

	uc := NewGetAvailability(repo, testShop(), false, logger.Discard())

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:    "2026-10-21",
		Service: "Barba",
		StaffID: 9,
	})
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}
