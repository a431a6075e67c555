package services

import (
	"time"

	"go.uber.org/zap"

	"chivent/api/ticketmaster"
	"chivent/config"
	redisdao "chivent/dao/redis"
	"chivent/models"
)

// FetchSource tells a caller where a page's data actually came from, so it
// can decide whether to warn the user instead of errors being swallowed.
type FetchSource string

const (
	// SourceFresh: fetched from the upstream API and cached.
	SourceFresh FetchSource = "fresh"
	// SourceCache: served from a live (non-expired) cache entry.
	SourceCache FetchSource = "cache"
	// SourceStale: upstream fetch failed, an expired entry was served instead.
	SourceStale FetchSource = "stale"
	// SourceEmpty: upstream fetch failed with nothing cached to fall back on.
	SourceEmpty FetchSource = "empty"
)

// Degraded reports whether the source indicates a fallback was taken.
func (s FetchSource) Degraded() bool {
	return s == SourceStale || s == SourceEmpty
}

// FeedResult is the outcome of one multi-page collection pass.
type FeedResult struct {
	Events        []models.DisplayEvent
	FilteredCount int
	PagesTried    int
	Degraded      bool
}

// FeedService assembles a count-bounded list of qualifying events by pulling
// raw pages through the cache and the normalizer.
type FeedService struct {
	pageCacheDao    *redisdao.RedisPageCacheDAO
	ticketmasterApi ticketmaster.TicketmasterAPI
	normalizer      *EventNormalizer
	logger          *zap.SugaredLogger

	ttl time.Duration
	now func() time.Time
}

// NewFeedService constructs a FeedService with its cache and API dependencies.
func NewFeedService(
	pageCacheDao *redisdao.RedisPageCacheDAO,
	ticketmasterApi ticketmaster.TicketmasterAPI,
	normalizer *EventNormalizer,
	logger *zap.SugaredLogger,
) *FeedService {
	return &FeedService{
		pageCacheDao:    pageCacheDao,
		ticketmasterApi: ticketmasterApi,
		normalizer:      normalizer,
		logger:          logger,
		ttl:             config.PAGE_CACHE_TTL_MINUTES * time.Minute,
		now:             time.Now,
	}
}

// FetchPage returns the raw page for (page, size), consulting the cache
// first. Fetch errors never escape: the stale entry is served when one
// exists, an empty page otherwise.
func (fs *FeedService) FetchPage(page, size int) (*models.EventsPage, FetchSource) {
	entry, err := fs.pageCacheDao.GetPage(page, size)
	if err != nil {
		fs.logger.Warnf("[FeedService] Failed reading cache for page=%d size=%d: %v", page, size, err)
	}

	if entry != nil && !entry.Expired(fs.now()) {
		return &entry.Payload, SourceCache
	}

	resp, fetchErr := fs.ticketmasterApi.SearchEvents(page, size)
	if fetchErr != nil {
		fs.logger.Warnf("[FeedService] Upstream fetch failed for page=%d size=%d: %v", page, size, fetchErr)
		if entry != nil {
			fs.logger.Infof("[FeedService] Serving stale cache entry for page=%d size=%d", page, size)
			return &entry.Payload, SourceStale
		}
		return &models.EventsPage{}, SourceEmpty
	}

	newEntry := models.CacheEntry{
		Payload: *resp,
		Expiry:  fs.now().Add(fs.ttl),
	}
	if err := fs.pageCacheDao.PutPage(page, size, newEntry); err != nil {
		fs.logger.Warnf("[FeedService] Failed caching page=%d size=%d: %v", page, size, err)
	}

	return resp, SourceFresh
}

// Collect gathers up to targetCount qualifying events starting at startPage,
// fetching internal pages of FEED_FETCH_PAGE_SIZE. It stops when the target
// is reached, the page-attempt budget runs out, or a page comes back with
// zero raw events (upstream exhausted). A short result is valid and signals
// exhaustion; it is truncated, never padded.
func (fs *FeedService) Collect(targetCount, maxPageAttempts, startPage int) *FeedResult {
	result := &FeedResult{Events: []models.DisplayEvent{}}
	page := startPage

	for len(result.Events) < targetCount && result.PagesTried < maxPageAttempts {
		raw, source := fs.FetchPage(page, config.FEED_FETCH_PAGE_SIZE)
		result.PagesTried++
		if source.Degraded() {
			result.Degraded = true
		}

		rawEvents := raw.RawEvents()
		if len(rawEvents) == 0 {
			break
		}

		normalized, filtered := fs.normalizer.Normalize(rawEvents)
		result.FilteredCount += filtered
		result.Events = append(result.Events, normalized...)

		page++
	}

	if len(result.Events) > targetCount {
		result.Events = result.Events[:targetCount]
	}

	fs.logger.Debugf("[FeedService] Collected %d events (filtered=%d, pages_tried=%d, degraded=%v)",
		len(result.Events), result.FilteredCount, result.PagesTried, result.Degraded)
	return result
}
