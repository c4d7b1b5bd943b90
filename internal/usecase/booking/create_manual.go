package booking

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CreateManualBookingInput struct {
	StaffID uint
	Date    string
	Time    string
	Service string

	CustomerName  string
	CustomerPhone string
}

// CreateManualBooking is the staff-side entry. It trusts the operator: no
// availability filtering, no opening-hours or closed-day check.
type CreateManualBooking struct {
	repo     domain.Repository
	shop     Shop
	notifier notification.Notifier
	audit    *audit.Dispatcher
	log      logrus.FieldLogger
}

func NewCreateManualBooking(
	repo domain.Repository,
	shop Shop,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *CreateManualBooking {
	return &CreateManualBooking{
		repo:     repo,
		shop:     shop,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

func (uc *CreateManualBooking) Execute(
	ctx context.Context,
	in CreateManualBookingInput,
) (*models.Booking, error) {

	start, err := timezone.ParseDateTime(
		strings.TrimSpace(in.Date),
		strings.TrimSpace(in.Time),
		uc.shop.loc(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.shop.Catalog.Lookup(in.Service)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// a booking never spans two calendar days
	if timezone.DayKey(end.Add(-time.Nanosecond)) != timezone.DayKey(start) {
		return nil, httperr.ErrBusiness("date_mismatch")
	}

	cust, err := validateCustomer(in.CustomerName, in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	if in.StaffID == 0 {
		return nil, httperr.ErrBusiness("staff_required")
	}
	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, err
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

	uc.audit.Dispatch(audit.Event{
		StaffID:  &b.StaffID,
		Actor:    audit.ActorStaff,
		Action:   "booking_created_manual",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	confirm(uc.notifier, uc.log, notification.NewConfirmation(b, staff.Name, audit.ActorStaff))

	return b, nil
}
