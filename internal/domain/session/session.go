package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Step is where a customer currently is in the booking flow.
type Step string

const (
	StepSlot      Step = "select_slot"
	StepCustomer  Step = "customer_details"
	StepConfirmed Step = "confirmed"
)

// AnyStaff lets the shop pick whoever is free.
const AnyStaff uint = 0

var ErrNotFound = errors.New("session not found")

// Session is the pending selection carried between customer interactions.
type Session struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	Service string `json:"service"`
	StaffID uint   `json:"staff_id"`
	Date    string `json:"date"`

	SlotTime    string `json:"slot_time,omitempty"`
	SlotStaffID uint   `json:"slot_staff_id,omitempty"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	BookingID uint `json:"booking_id,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// ===============================
// Transitions
// ===============================

func New(service string, staffID uint, date string, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Step:      StepSlot,
		Service:   service,
		StaffID:   staffID,
		Date:      date,
		UpdatedAt: now,
	}
}

// SelectSlot records the chosen start and the staff member who will serve it.
// Picking again while entering customer details replaces the previous choice.
func (s *Session) SelectSlot(slotTime string, staffID uint, now time.Time) error {
	if s.Step != StepSlot && s.Step != StepCustomer {
		return httperr.ErrBusiness("invalid_step")
	}
	if s.StaffID != AnyStaff && staffID != s.StaffID {
		return httperr.ErrBusiness("staff_mismatch")
	}
	if staffID == AnyStaff {
		return httperr.ErrBusiness("staff_required")
	}

	s.SlotTime = slotTime
	s.SlotStaffID = staffID
	s.Step = StepCustomer
	s.UpdatedAt = now
	return nil
}

func (s *Session) SetCustomer(name, phone string, now time.Time) error {
	if s.Step != StepCustomer {
		return httperr.ErrBusiness("invalid_step")
	}
	s.CustomerName = name
	s.CustomerPhone = phone
	s.UpdatedAt = now
	return nil
}

func (s *Session) Confirm(bookingID uint, now time.Time) error {
	if s.Step != StepCustomer {
		return httperr.ErrBusiness("invalid_step")
	}
	s.BookingID = bookingID
	s.Step = StepConfirmed
	s.UpdatedAt = now
	return nil
}
