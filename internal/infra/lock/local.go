package lock

import (
	"context"
	"sync"
)

// Local is an in-process Locker, one channel-based mutex per staff member.
type Local struct {
	mu    sync.Mutex
	slots map[uint]chan struct{}
}

func NewLocal() *Local {
	return &Local{slots: make(map[uint]chan struct{})}
}

func (l *Local) Acquire(ctx context.Context, staffID uint) (func(), error) {
	ch := l.slot(staffID)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ErrNotAcquired
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-ch })
	}, nil
}

func (l *Local) slot(staffID uint) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[staffID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[staffID] = ch
	}
	return ch
}

var _ Locker = (*Local)(nil)
