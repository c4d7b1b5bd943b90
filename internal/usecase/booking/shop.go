package booking

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Shop is the static configuration every use case reads.
type Shop struct {
	Schedule domain.Schedule
	Catalog  domain.Catalog
	Location *time.Location
	Now      func() time.Time
}

func (s Shop) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.loc())
	}
	return timezone.NowIn(s.loc())
}

func (s Shop) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// Today is midnight of the current day in the shop location.
func (s Shop) Today() time.Time {
	return timezone.StartOfDay(s.now())
}

// openDay parses date and rejects closed weekdays.
func (s Shop) openDay(date string) (time.Time, error) {
	day, err := timezone.ParseDate(strings.TrimSpace(date), s.loc())
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	if s.Schedule.IsClosed(day) {
		return time.Time{}, httperr.ErrBusiness("closed_day")
	}
	return day, nil
}

// slotStart parses a date + HH:MM pair in the shop location.
func (s Shop) slotStart(date, hm string) (time.Time, error) {
	start, err := timezone.ParseDateTime(strings.TrimSpace(date), strings.TrimSpace(hm), s.loc())
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if s.Schedule.IsClosed(start) {
		return time.Time{}, httperr.ErrBusiness("closed_day")
	}
	return start, nil
}

type customer struct {
	name  string
	phone string
}

// validateCustomer enforces the mandatory name and phone.
func validateCustomer(name, phone string) (customer, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return customer{}, httperr.ErrBusiness("missing_customer_data")
	}
	if !validators.IsNameValid(name) {
		return customer{}, httperr.ErrBusiness("invalid_name")
	}
	if !validators.IsPhoneValid(phone) {
		return customer{}, httperr.ErrBusiness("invalid_phone")
	}
	return customer{
		name:  validators.NormalizeName(name),
		phone: validators.NormalizePhone(phone),
	}, nil
}
