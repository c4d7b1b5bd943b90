package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired is returned when the lock could not be taken before ctx ended.
var ErrNotAcquired = errors.New("staff lock not acquired")

// Locker serializes booking commits per staff member.
type Locker interface {
	Acquire(ctx context.Context, staffID uint) (release func(), err error)
}
