package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureStaffSeeded(ctx context.Context, roster domain.Roster) (int, error) {
	args := m.Called(ctx, roster)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListStaff(ctx context.Context) ([]models.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Staff), args.Error(1)
}

func (m *MockRepository) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockRepository) ListBookings(ctx context.Context, staffID uint, date time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, staffID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) DeleteBooking(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// recordingNotifier hands every confirmation to a channel so tests can
// wait for the background send.
type recordingNotifier struct {
	sent chan notification.Confirmation
	err  error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan notification.Confirmation, 10)}
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, c notification.Confirmation) error {
	n.sent <- c
	return n.err
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

var rome = timezone.Location("Europe/Rome")

// testShop runs the default Salvatore/Raffaele shop with the clock frozen
// on Tuesday 2026-10-20 at 10:10.
func testShop() Shop {
	return Shop{
		Schedule: domain.DefaultSchedule(),
		Catalog:  domain.DefaultCatalog(),
		Location: rome,
		Now: func() time.Time {
			return time.Date(2026, 10, 20, 10, 10, 0, 0, rome)
		},
	}
}

func newTestAudit(t *testing.T) (*audit.Dispatcher, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	d := audit.NewDispatcher(sink, logger.Discard())
	t.Cleanup(d.Close)
	return d, sink
}

func staffRows() []models.Staff {
	return []models.Staff{
		{ID: 1, Name: "Salvatore"},
		{ID: 2, Name: "Raffaele"},
	}
}

func day(date string) time.Time {
	d, err := timezone.ParseDate(date, rome)
	if err != nil {
		panic(err)
	}
	return d
}

func booked(staffID uint, date, start string, minutes int) models.Booking {
	s, err := timezone.ParseDateTime(date, start, rome)
	if err != nil {
		panic(err)
	}
	return models.Booking{
		StaffID:   staffID,
		Day:       date,
		StartTime: s,
		EndTime:   s.Add(time.Duration(minutes) * time.Minute),
	}
}
