package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
	"eventboard/internal/repository/memory"
)

func TestIdentityStore_RestoresPersistedToken(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionRepository()
	require.NoError(t, sessions.Put(ctx, "sess", domain.IdentityKey, "20520001"))

	store := NewIdentityStore(ctx, sessions, "sess", time.Second, testLogger)
	assert.Equal(t, "20520001", store.Get())

	other := NewIdentityStore(ctx, sessions, "another", time.Second, testLogger)
	assert.Equal(t, "", other.Get())
}

func TestIdentityStore_SetPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionRepository()
	store := NewIdentityStore(ctx, sessions, "sess", time.Second, testLogger)

	var first, second []string
	unsubFirst := store.Subscribe(func(id string) { first = append(first, id) })
	store.Subscribe(func(id string) {
		// Subscribers observe the new value.
		assert.Equal(t, id, store.Get())
		second = append(second, id)
	})

	store.Set("A")
	store.Set("B")
	assert.Equal(t, []string{"A", "B"}, first)
	assert.Equal(t, []string{"A", "B"}, second)

	persisted, err := sessions.Get(ctx, "sess", domain.IdentityKey)
	require.NoError(t, err)
	assert.Equal(t, "B", persisted)

	unsubFirst()
	unsubFirst()
	store.Set("")
	assert.Equal(t, []string{"A", "B"}, first)
	assert.Equal(t, []string{"A", "B", ""}, second)
	assert.Equal(t, "", store.Get())
}

func TestIdentityStore_PersistFailureKeepsMemoryValue(t *testing.T) {
	store := NewIdentityStore(context.Background(), failingSessions{}, "sess", time.Second, testLogger)
	notified := false
	store.Subscribe(func(string) { notified = true })

	store.Set("S1")
	assert.Equal(t, "S1", store.Get())
	assert.True(t, notified)
}

func TestIdentityStore_WithoutSessions(t *testing.T) {
	store := NewIdentityStore(context.Background(), nil, "", time.Second, testLogger)
	assert.Equal(t, "", store.Get())
	store.Set("S1")
	assert.Equal(t, "S1", store.Get())
}

func TestIdentityStore_ConcurrentSetsNotifyInWriteOrder(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionRepository()
	store := NewIdentityStore(ctx, sessions, "sess", time.Second, testLogger)

	var mu sync.Mutex
	var last string
	store.Subscribe(func(id string) {
		// Every notification sees its own write as the current value.
		assert.Equal(t, id, store.Get())
		mu.Lock()
		last = id
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Set(fmt.Sprintf("S%d", i))
		}(i)
	}
	wg.Wait()

	persisted, err := sessions.Get(ctx, "sess", domain.IdentityKey)
	require.NoError(t, err)
	assert.Equal(t, store.Get(), last)
	assert.Equal(t, store.Get(), persisted)
}
