package models

import "time"

// CacheEntry is one cached raw API response keyed by (page, size).
// Expiry is checked by the application, not by a store TTL, so an expired
// entry can still be served as a stale fallback when the upstream is down.
type CacheEntry struct {
	Payload EventsPage `json:"payload"`
	Expiry  time.Time  `json:"expiry"`
}

// Expired reports whether the entry is past its expiry at the given instant.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.Expiry)
}
