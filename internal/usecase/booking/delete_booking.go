package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(repo domain.Repository, audit *audit.Dispatcher) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: audit}
}

// Execute reports whether a booking was removed. An unknown id is not an error.
func (uc *DeleteBooking) Execute(ctx context.Context, id uint) (bool, error) {
	deleted, err := uc.repo.DeleteBooking(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		uc.audit.Dispatch(audit.Event{
			Actor:    audit.ActorStaff,
			Action:   "booking_deleted",
			Entity:   "booking",
			EntityID: &id,
		})
	}

	return deleted, nil
}
