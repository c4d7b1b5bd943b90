package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
)

func TestStores_SaveGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	stores := map[string]session.Store{
		"memory": NewMemory(time.Minute),
		"redis":  NewRedis(client, time.Minute),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := session.New("Barba", 1, "2026-10-20", time.Now())

			_, err := store.Get(ctx, s.ID)
			assert.ErrorIs(t, err, session.ErrNotFound)

			require.NoError(t, store.Save(ctx, s))

			got, err := store.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, s.ID, got.ID)
			assert.Equal(t, session.StepSlot, got.Step)
			assert.Equal(t, "Barba", got.Service)

			// returned copy is detached from the stored one
			got.Step = session.StepConfirmed
			again, err := store.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, session.StepSlot, again.Step)

			require.NoError(t, store.Delete(ctx, s.ID))
			_, err = store.Get(ctx, s.ID)
			assert.ErrorIs(t, err, session.ErrNotFound)
		})
	}
}

func TestMemory_Expires(t *testing.T) {
	m := NewMemory(time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	s := session.New("Barba", 1, "2026-10-20", now)
	require.NoError(t, m.Save(context.Background(), s))

	now = now.Add(2 * time.Minute)
	_, err := m.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedis_Expires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedis(client, time.Minute)

	s := session.New("Barba", 1, "2026-10-20", time.Now())
	require.NoError(t, store.Save(context.Background(), s))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
