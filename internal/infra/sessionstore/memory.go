package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
)

type entry struct {
	s       session.Session
	expires time.Time
}

// Memory keeps sessions in-process. Expired entries are dropped on access.
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	if m.now().After(e.expires) {
		delete(m.items, id)
		return nil, session.ErrNotFound
	}

	s := e.s
	return &s, nil
}

func (m *Memory) Save(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()
	m.items[s.ID] = entry{s: *s, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, id)
	return nil
}

func (m *Memory) sweep() {
	now := m.now()
	for id, e := range m.items {
		if now.After(e.expires) {
			delete(m.items, id)
		}
	}
}

var _ session.Store = (*Memory)(nil)
