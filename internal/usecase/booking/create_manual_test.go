package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCreateManualBooking_IgnoresAvailability(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetStaff", mock.Anything, uint(2)).Return(&models.Staff{ID: 2, Name: "Raffaele"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	auditor, sink := newTestAudit(t)
	uc := NewCreateManualBooking(repo, testShop(), newRecordingNotifier(), auditor, logger.Discard())

	// Monday, off cadence, outside opening hours: the operator decides
	b, err := uc.Execute(context.Background(), CreateManualBookingInput{
		StaffID:       2,
		Date:          "2026-10-19",
		Time:          "13:10",
		Service:       "Taglio + Barba",
		CustomerName:  "Luigi",
		CustomerPhone: "+39 081 555 1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", b.Day)
	assert.Equal(t, "13:55", b.EndTime.Format("15:04"))
	assert.Equal(t, "+390815551234", b.CustomerPhone)

	auditor.Close()
	assert.Equal(t, []string{"booking_created_manual"}, sink.actions())
	repo.AssertNotCalled(t, "ListBookings", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateManualBooking_Rejections(t *testing.T) {
	base := CreateManualBookingInput{
		StaffID:       1,
		Date:          "2026-10-21",
		Time:          "09:00",
		Service:       "Barba",
		CustomerName:  "Luigi",
		CustomerPhone: "0815551234",
	}

	cases := []struct {
		name   string
		mutate func(*CreateManualBookingInput)
		code   string
	}{
		{"crosses midnight", func(in *CreateManualBookingInput) { in.Time = "23:50" }, "date_mismatch"},
		{"bad time", func(in *CreateManualBookingInput) { in.Time = "25:00" }, "invalid_date_or_time"},
		{"missing phone", func(in *CreateManualBookingInput) { in.CustomerPhone = "" }, "missing_customer_data"},
		{"unknown service", func(in *CreateManualBookingInput) { in.Service = "Colore" }, "service_not_found"},
		{"no staff", func(in *CreateManualBookingInput) { in.StaffID = 0 }, "staff_required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auditor, _ := newTestAudit(t)
			uc := NewCreateManualBooking(new(MockRepository), testShop(), newRecordingNotifier(), auditor, logger.Discard())

			in := base
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateManualBooking_EndingAtMidnightIsAllowed(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetStaff", mock.Anything, uint(1)).Return(&models.Staff{ID: 1, Name: "Salvatore"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	auditor, _ := newTestAudit(t)
	uc := NewCreateManualBooking(repo, testShop(), newRecordingNotifier(), auditor, logger.Discard())

	b, err := uc.Execute(context.Background(), CreateManualBookingInput{
		StaffID:       1,
		Date:          "2026-10-21",
		Time:          "23:45",
		Service:       "Barba",
		CustomerName:  "Luigi",
		CustomerPhone: "0815551234",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-21", b.Day)
}
