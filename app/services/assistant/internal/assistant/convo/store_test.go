package convo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store, err := NewSessionStore(time.Minute)
	require.NoError(t, err)

	_, err = store.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := newSession("s1", time.Now())
	store.Put(session)

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, StateGreeting, got.State)

	store.Delete("s1")
	_, err = store.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionLockSerializesSameID(t *testing.T) {
	store, err := NewSessionStore(time.Minute)
	require.NoError(t, err)

	const workers = 8
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock("same")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, workers, counter)

	// all waiters released their entry
	store.mu.Lock()
	assert.Empty(t, store.locks)
	store.mu.Unlock()
}
