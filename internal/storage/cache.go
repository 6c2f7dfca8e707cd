package storage

import (
	"encoding/json"
	"time"

	"github.com/mrcow/mrcow-backend/pkg/logger"
)

// cachePrefix namespaces TTL-bounded payloads from durable app state.
const cachePrefix = "cache_"

// cacheEntry is the stored shape of a cached payload.
type cacheEntry struct {
	Data       json.RawMessage `json:"data"`
	Timestamp  int64           `json:"timestamp"`
	Expiration int64           `json:"expiration"`
}

// SaveCached stores an arbitrary payload with a time-to-live.
func SaveCached(store Store, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	now := time.Now()
	return store.Set(cachePrefix+key, cacheEntry{
		Data:       raw,
		Timestamp:  now.UnixMilli(),
		Expiration: now.Add(ttl).UnixMilli(),
	})
}

// GetCached reads a cached payload into out. Expired entries are removed
// on read and reported as absent.
func GetCached(store Store, key string, out interface{}) (bool, error) {
	var entry cacheEntry
	found, err := store.Get(cachePrefix+key, &entry)
	if err != nil || !found {
		return false, err
	}

	if time.Now().UnixMilli() > entry.Expiration {
		if err := store.Delete(cachePrefix + key); err != nil {
			logger.Warn("Failed to remove expired cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false, nil
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

// SweepExpiredCache removes every expired cache entry and returns how many
// were dropped.
func SweepExpiredCache(store Store) (int, error) {
	keys, err := store.Keys(cachePrefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	now := time.Now().UnixMilli()
	for _, key := range keys {
		var entry cacheEntry
		found, err := store.Get(key, &entry)
		if err != nil || !found {
			continue
		}
		if now > entry.Expiration {
			if err := store.Delete(key); err != nil {
				logger.Warn("Failed to sweep cache entry", map[string]interface{}{
					"key":   key,
					"error": err.Error(),
				})
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// ClearCache drops all cache entries regardless of expiration.
func ClearCache(store Store) error {
	keys, err := store.Keys(cachePrefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
