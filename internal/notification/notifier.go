package notification

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Confirmation is what every channel receives after a booking is stored.
type Confirmation struct {
	BookingID     uint      `json:"booking_id"`
	StaffID       uint      `json:"staff_id"`
	StaffName     string    `json:"staff_name"`
	Service       string    `json:"service"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Source        string    `json:"source"`
}

func NewConfirmation(b *models.Booking, staffName, source string) Confirmation {
	return Confirmation{
		BookingID:     b.ID,
		StaffID:       b.StaffID,
		StaffName:     staffName,
		Service:       b.Service,
		Start:         b.StartTime,
		End:           b.EndTime,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Source:        source,
	}
}

type Notifier interface {
	BookingConfirmed(ctx context.Context, c Confirmation) error
}

// Nop only logs; it is the default when no channel is configured.
type Nop struct {
	log logrus.FieldLogger
}

func NewNop(log logrus.FieldLogger) *Nop {
	return &Nop{log: log}
}

func (n *Nop) BookingConfirmed(_ context.Context, c Confirmation) error {
	n.log.WithFields(logrus.Fields{
		"booking_id": c.BookingID,
		"staff_id":   c.StaffID,
	}).Debug("confirmation skipped (no channel configured)")
	return nil
}

// Multi fans out to every channel and logs individual failures.
type Multi struct {
	notifiers []Notifier
	log       logrus.FieldLogger
}

func NewMulti(log logrus.FieldLogger, notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers, log: log}
}

func (m *Multi) BookingConfirmed(ctx context.Context, c Confirmation) error {
	var firstErr error
	for _, n := range m.notifiers {
		if err := n.BookingConfirmed(ctx, c); err != nil {
			m.log.WithError(err).WithField("booking_id", c.BookingID).Warn("confirmation channel failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
