package bbolt

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/corey/adco/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Answer cache: put/get per day, clear, survives restart, lock timeout
// =============================================================================

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func key(day int, part, hash string) ports.AnswerKey {
	return ports.AnswerKey{Day: day, Part: part, InputHash: hash}
}

func TestStore_PutGet(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.Get(key(1, "a", "abc"))
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should miss")

	require.NoError(t, store.Put(key(1, "a", "abc"), "514579"))
	got, ok, err := store.Get(key(1, "a", "abc"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "514579", got)

	// Overwrite
	require.NoError(t, store.Put(key(1, "a", "abc"), "42"))
	got, _, err = store.Get(key(1, "a", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestStore_KeysAreDistinct(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Put(key(7, "a", "h1"), "4"))
	require.NoError(t, store.Put(key(7, "b", "h1"), "32"))
	require.NoError(t, store.Put(key(8, "a", "h1"), "5"))

	tests := []struct {
		key  ports.AnswerKey
		want string
		ok   bool
	}{
		{key(7, "a", "h1"), "4", true},
		{key(7, "b", "h1"), "32", true},
		{key(8, "a", "h1"), "5", true},
		{key(8, "b", "h1"), "", false},
		{key(7, "a", "h2"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok, err := store.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	n, err := store.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Clear(), "clearing an empty store is not an error")

	require.NoError(t, store.Put(key(2, "a", "x"), "2"))
	require.NoError(t, store.Put(key(3, "b", "y"), "336"))
	require.NoError(t, store.Clear())

	_, ok, err := store.Get(key(2, "a", "x"))
	require.NoError(t, err)
	assert.False(t, ok)
	n, err := store.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restart.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.Put(key(5, "b", "seats"), "711"))
	require.NoError(t, store1.Close())

	store2, err := NewStore(path)
	require.NoError(t, err)
	defer store2.Close()

	got, ok, err := store2.Get(key(5, "b", "seats"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "711", got)
}

func TestStore_ConcurrentReads(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Put(key(6, "a", "forms"), "11"))

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok, err := store.Get(key(6, "a", "forms"))
			if err != nil {
				errs <- err
				return
			}
			if !ok || got != "11" {
				errs <- fmt.Errorf("got %q, %v", got, ok)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent read error: %v", err)
	}
}

func TestStore_OpenTimeout_ErrorMessage(t *testing.T) {
	// A second open of a locked file gives up after the configured timeout.
	path := filepath.Join(t.TempDir(), "locked.db")

	store1, err := NewStore(path)
	require.NoError(t, err)
	defer store1.Close()

	start := time.Now()
	store2, err := NewStore(path)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Nil(t, store2)
	assert.Contains(t, err.Error(), "bbolt open")
	assert.Contains(t, err.Error(), "timeout")
	assert.Less(t, elapsed, 3*time.Second)
}
