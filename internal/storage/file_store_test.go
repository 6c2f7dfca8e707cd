package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) *FileStore {
	path := filepath.Join(t.TempDir(), "storage.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store
}

func TestFileStore_SetGet(t *testing.T) {
	store := setupFileStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("key", payload{Name: "corndog", Count: 2}))

	var got payload
	found, err := store.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "corndog", Count: 2}, got)
}

func TestFileStore_GetAbsent(t *testing.T) {
	store := setupFileStore(t)

	var got string
	found, err := store.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_Delete(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key")) // absent delete is benign

	var got string
	found, _ := store.Get("key", &got)
	assert.False(t, found)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	var got string
	found, err := reopened.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", got)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	keys, err := store.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_KeysPrefix(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, store.Set("cache_menu", 1))
	require.NoError(t, store.Set("cache_locations", 2))
	require.NoError(t, store.Set("mrCowCart", 3))

	keys, err := store.Keys("cache_")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestCache_RoundTrip(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, SaveCached(store, "menu", []string{"classic", "potato"}, time.Minute))

	var got []string
	found, err := GetCached(store, "menu", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"classic", "potato"}, got)
}

func TestCache_ExpiresOnRead(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, SaveCached(store, "menu", "stale", -time.Minute))

	var got string
	found, err := GetCached(store, "menu", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Expired entry is removed, not just hidden
	keys, _ := store.Keys(cachePrefix)
	assert.Empty(t, keys)
}

func TestCache_SweepExpired(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, SaveCached(store, "stale", 1, -time.Minute))
	require.NoError(t, SaveCached(store, "fresh", 2, time.Hour))

	removed, err := SweepExpiredCache(store)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	var got int
	found, _ := GetCached(store, "fresh", &got)
	assert.True(t, found)
}

func TestCache_ClearDropsEverything(t *testing.T) {
	store := setupFileStore(t)

	require.NoError(t, SaveCached(store, "menu", 1, time.Hour))
	require.NoError(t, SaveCached(store, "locations", 2, time.Hour))
	require.NoError(t, store.Set("mrCowCart", 3))

	require.NoError(t, ClearCache(store))

	keys, err := store.Keys(cachePrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// Non-cache keys are untouched
	var cart int
	found, err := store.Get("mrCowCart", &cart)
	require.NoError(t, err)
	assert.True(t, found)
}
