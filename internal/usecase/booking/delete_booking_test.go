package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

func TestDeleteBooking(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteBooking", mock.Anything, uint(3)).Return(true, nil)
	repo.On("DeleteBooking", mock.Anything, uint(404)).Return(false, nil)

	auditor, sink := newTestAudit(t)
	uc := NewDeleteBooking(repo, auditor)

	deleted, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Execute(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)

	auditor.Close()
	assert.Equal(t, []string{"booking_deleted"}, sink.actions(), "only real deletions are audited")
}

func TestDeleteBooking_StoreError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteBooking", mock.Anything, uint(3)).
		Return(false, fmt.Errorf("delete booking: %w: %w", domain.ErrStoreUnavailable, errors.New("timeout")))

	auditor, _ := newTestAudit(t)

	_, err := NewDeleteBooking(repo, auditor).Execute(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
