package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	lockWait      = 5 * time.Second
	notifyTimeout = 5 * time.Second
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StaffID uint
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Service string

	CustomerName  string
	CustomerPhone string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the customer self-service commit. The slot is checked
// again under the staff lock, so two customers racing for the same start
// cannot both succeed.
type CreateBooking struct {
	repo     domain.Repository
	shop     Shop
	locker   lock.Locker
	notifier notification.Notifier
	audit    *audit.Dispatcher
	log      logrus.FieldLogger
}

func NewCreateBooking(
	repo domain.Repository,
	shop Shop,
	locker lock.Locker,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		shop:     shop,
		locker:   locker,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Customer data
	// --------------------------------------------------
	cust, err := validateCustomer(in.CustomerName, in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Date / time / service
	// --------------------------------------------------
	start, err := uc.shop.slotStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if start.Before(uc.shop.now()) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	service, err := uc.shop.Catalog.Lookup(in.Service)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 3. Staff
	// --------------------------------------------------
	if in.StaffID == 0 {
		return nil, httperr.ErrBusiness("staff_required")
	}
	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Check-then-insert under the staff lock
	// --------------------------------------------------
	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	release, err := uc.locker.Acquire(lockCtx, staff.ID)
	cancel()
	if err != nil {
		// contention and lock backend failures are both worth a retry
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	defer release()

	existing, err := uc.repo.ListBookings(ctx, staff.ID, start)
	if err != nil {
		return nil, err
	}
	if !uc.shop.Schedule.Fits(start, service.DurationMin, domain.Snapshot(existing)) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	b := &models.Booking{
		StaffID:       staff.ID,
		Day:           timezone.DayKey(start),
		StartTime:     start,
		EndTime:       end,
		Service:       service.Label,
		CustomerName:  cust.name,
		CustomerPhone: cust.phone,
	}
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit + confirmation
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		StaffID:  &b.StaffID,
		Actor:    audit.ActorCustomer,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	confirm(uc.notifier, uc.log, notification.NewConfirmation(b, staff.Name, audit.ActorCustomer))

	return b, nil
}

// confirm fires the confirmation hook off the request path; a failed
// message never undoes a stored booking.
func confirm(n notification.Notifier, log logrus.FieldLogger, c notification.Confirmation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.BookingConfirmed(ctx, c); err != nil {
			log.WithError(err).WithField("booking_id", c.BookingID).Warn("booking confirmation not delivered")
		}
	}()
}
