package redis

import (
	"encoding/json"
	"fmt"

	"chivent/db"
	"chivent/models"
)

// EVENTS_PAGE_KEY_FORMAT_V1 keys one cached raw response by (page, size).
const EVENTS_PAGE_KEY_FORMAT_V1 = "events_page_v1:%d_%d"

// RedisPageCacheDAO handles raw events-page cache entries using Redis.
type RedisPageCacheDAO struct {
	client db.RedisClient
}

// NewRedisPageCacheDAO initializes a RedisPageCacheDAO with the Redis client.
func NewRedisPageCacheDAO(client db.RedisClient) *RedisPageCacheDAO {
	return &RedisPageCacheDAO{client: client}
}

// PutPage stores a cache entry for the given (page, size) key, overwriting
// any previous entry wholesale.
func (dao *RedisPageCacheDAO) PutPage(page, size int, entry models.CacheEntry) error {
	key := fmt.Sprintf(EVENTS_PAGE_KEY_FORMAT_V1, page, size)
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry for %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set cache entry in redis: %w", err)
	}
	return nil
}

// GetPage retrieves the cache entry for (page, size). A missing key is a
// cache miss, reported as (nil, nil).
func (dao *RedisPageCacheDAO) GetPage(page, size int) (*models.CacheEntry, error) {
	key := fmt.Sprintf(EVENTS_PAGE_KEY_FORMAT_V1, page, size)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}
	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(str), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry JSON: %w", err)
	}
	return &entry, nil
}

// ListCachedPageKeys returns the keys of every cached raw page.
func (dao *RedisPageCacheDAO) ListCachedPageKeys() ([]string, error) {
	pattern := "events_page_v1:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached page keys: %w", err)
	}
	return keys, nil
}
