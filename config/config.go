package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Ticketmaster Discovery API
const TICKETMASTER_ENDPOINT_BASE_V2 = "https://app.ticketmaster.com/discovery/v2"
const EVENTS_CITY = "Chicago"
const EVENTS_STATE_CODE = "IL"
const EVENTS_SORT = "date,asc"

// Feed config. The internal fetch size is larger than the display target so
// that filtering losses are amortized across fewer upstream round trips.
const FEED_TARGET_COUNT = 20
const FEED_FETCH_PAGE_SIZE = 50
const FEED_MAX_PAGE_ATTEMPTS = 5
const PAGE_CACHE_TTL_MINUTES = 60

// Server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EVENTS_PAGE_RESPONSE_RESOURCE = "events_page_response.json"

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TicketmasterAPIKey returns the Discovery API key. Empty outside prod, where
// the mock client is wired instead.
func TicketmasterAPIKey() string {
	return os.Getenv("TICKETMASTER_API_KEY")
}

func RedisAddress() string {
	return GetEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

func ServerAddress() string {
	return GetEnv("SERVER_ADDRESS", SERVER_ADDRESS)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
