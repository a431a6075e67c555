package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chivent/config"
	"chivent/models"
	services "chivent/service"
	"chivent/session"
	"chivent/util"
)

const PAGE_QUERY_ARG = "page"

const EVENT_NOT_FOUND_MESSAGE = "Event not found! It may have been removed or the session expired."

// FeedResponse is the payload for the event feed endpoint.
type FeedResponse struct {
	Events        []models.DisplayEvent `json:"events"`
	Page          int                   `json:"page"`
	Count         int                   `json:"count"`
	FilteredCount int                   `json:"filtered_count"`
	Degraded      bool                  `json:"degraded"`
}

// EventDetailsResponse pairs a cached event with its display formatting.
type EventDetailsResponse struct {
	Event            models.DisplayEvent `json:"event"`
	DisplayDate      string              `json:"display_date"`
	DisplayStartTime string              `json:"display_start_time"`
	DisplayEndTime   string              `json:"display_end_time"`
}

type EventHandler struct {
	feedService *services.FeedService
	sessions    *session.Store
	logger      *zap.SugaredLogger
}

func NewEventHandler(
	feedService *services.FeedService,
	sessions *session.Store,
	logger *zap.SugaredLogger,
) *EventHandler {
	return &EventHandler{
		feedService: feedService,
		sessions:    sessions,
		logger:      logger,
	}
}

// GetFeed handles GET /v1/events?page=N
func (h *EventHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)

	// 1) Resolve the pagination cursor: an explicit page moves it, otherwise
	// the session's current cursor is reused.
	if raw := r.URL.Query().Get(PAGE_QUERY_ARG); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			http.Error(w, "Invalid argument "+PAGE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		sess.Cursor = page
	}
	sess.GoToHome()

	// 2) Assemble the feed across as many upstream pages as needed.
	result := h.feedService.Collect(config.FEED_TARGET_COUNT, config.FEED_MAX_PAGE_ATTEMPTS, sess.Cursor)

	// 3) Persist the events so detail views keep working after the cursor
	// moves forward.
	sess.RememberEvents(result.Events)

	writeJSON(w, http.StatusOK, FeedResponse{
		Events:        result.Events,
		Page:          sess.Cursor,
		Count:         len(result.Events),
		FilteredCount: result.FilteredCount,
		Degraded:      result.Degraded,
	})
}

// GetEvent handles GET /v1/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)
	eventID := mux.Vars(r)["id"]

	ev, ok := sess.LookupEvent(eventID)
	if !ok {
		h.logger.Infof("[EventHandler] Event %s not in session cache for session=%s", eventID, sess.ID)
		writeError(w, http.StatusNotFound, EVENT_NOT_FOUND_MESSAGE)
		return
	}

	sess.GoToEventDetails(eventID)

	writeJSON(w, http.StatusOK, EventDetailsResponse{
		Event:            ev,
		DisplayDate:      util.FormatDisplayDate(ev.StartDate),
		DisplayStartTime: util.FormatDisplayTime(ev.StartTime),
		DisplayEndTime:   util.FormatDisplayTime(ev.EndTime),
	})
}

// GetFeedChart handles GET /v1/events/chart, rendering the price
// distribution of the session's current feed page as an HTML chart.
func (h *EventHandler) GetFeedChart(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)

	result := h.feedService.Collect(config.FEED_TARGET_COUNT, config.FEED_MAX_PAGE_ATTEMPTS, sess.Cursor)
	sess.RememberEvents(result.Events)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotPriceHistogram(result.Events, w); err != nil {
		h.logger.Errorf("[EventHandler] Failed rendering price chart: %v", err)
	}
}
