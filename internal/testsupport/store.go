package testsupport

import (
	"context"
	"testing"

	"translatesrt/internal/cache"
)

// MustOpenCache opens a cache.Store for tests and registers cleanup.
func MustOpenCache(t testing.TB, path string) *cache.Store {
	t.Helper()

	store, err := cache.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
