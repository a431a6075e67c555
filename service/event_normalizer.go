package services

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"chivent/models"
)

const PLACEHOLDER_IMAGE_URL = "https://via.placeholder.com/300x200?text=Event+Image"
const DESCRIPTION_FALLBACK = "No description available."
const DEFAULT_VENUE = "Chicago, IL"
const DEFAULT_VENUE_CITY = "Chicago"
const DEFAULT_VENUE_STATE = "IL"
const TIME_TBA = "TBA"

// MIN_DESCRIPTION_LENGTH is the trimmed length a candidate description must
// exceed to count as usable.
const MIN_DESCRIPTION_LENGTH = 10

// MIN_IMAGE_WIDTH is the preferred minimum width of a display image.
const MIN_IMAGE_WIDTH = 300

// EVENT_DURATION_HOURS is the assumed event length used to derive end times.
const EVENT_DURATION_HOURS = 3

// EventNormalizer maps raw Discovery API records into display-ready events,
// applying the feed's inclusion filter.
type EventNormalizer struct {
	logger *zap.SugaredLogger
}

func NewEventNormalizer(logger *zap.SugaredLogger) *EventNormalizer {
	return &EventNormalizer{logger: logger}
}

// Normalize shapes each raw event and drops any entry lacking an image or a
// price. Entries without either are non-actionable for the feed. Input order
// is preserved; the second return value counts the dropped entries.
func (n *EventNormalizer) Normalize(rawEvents []models.RawEvent) ([]models.DisplayEvent, int) {
	events := []models.DisplayEvent{}
	filteredCount := 0

	for _, raw := range rawEvents {
		price, priceValue, hasPrice := derivePrice(raw)
		image, hasImage := deriveImage(raw)

		if !(hasImage && hasPrice) {
			filteredCount++
			continue
		}

		description, hasDescription := deriveDescription(raw)
		startDate, startTime, endTime := deriveSchedule(raw)

		events = append(events, models.DisplayEvent{
			ID:             raw.ID,
			Title:          raw.Name,
			Description:    description,
			Image:          image,
			Price:          price,
			PriceValue:     priceValue,
			Location:       deriveVenue(raw),
			StartDate:      startDate,
			StartTime:      startTime,
			EndTime:        endTime,
			URL:            raw.URL,
			HasPrice:       hasPrice,
			HasDescription: hasDescription,
			HasImage:       hasImage,
		})
	}

	if filteredCount > 0 {
		n.logger.Debugf("[EventNormalizer] Filtered %d of %d raw events without image or price",
			filteredCount, len(rawEvents))
	}
	return events, filteredCount
}

// derivePrice takes the minimum of the first price range, if present.
func derivePrice(raw models.RawEvent) (string, float64, bool) {
	if len(raw.PriceRanges) == 0 || raw.PriceRanges[0].Min == nil {
		return "N/A", 0.0, false
	}
	value := *raw.PriceRanges[0].Min
	return fmt.Sprintf("$%.2f", value), value, true
}

// deriveImage prefers the first image at least MIN_IMAGE_WIDTH wide, then
// falls back to the first image. No images at all means the placeholder.
func deriveImage(raw models.RawEvent) (string, bool) {
	if len(raw.Images) == 0 {
		return PLACEHOLDER_IMAGE_URL, false
	}
	for _, img := range raw.Images {
		if img.Width >= MIN_IMAGE_WIDTH {
			return img.URL, true
		}
	}
	return raw.Images[0].URL, true
}

// deriveDescription tries info, pleaseNote, then description, accepting the
// first whose trimmed length exceeds MIN_DESCRIPTION_LENGTH.
func deriveDescription(raw models.RawEvent) (string, bool) {
	for _, candidate := range []string{raw.Info, raw.PleaseNote, raw.Description} {
		if len(strings.TrimSpace(candidate)) > MIN_DESCRIPTION_LENGTH {
			return candidate, true
		}
	}
	return DESCRIPTION_FALLBACK, false
}

// deriveVenue formats "Name, City, StateCode" from the first embedded venue.
func deriveVenue(raw models.RawEvent) string {
	if raw.Embedded == nil || len(raw.Embedded.Venues) == 0 {
		return DEFAULT_VENUE
	}
	v := raw.Embedded.Venues[0]

	city := DEFAULT_VENUE_CITY
	if v.City != nil && v.City.Name != "" {
		city = v.City.Name
	}
	state := DEFAULT_VENUE_STATE
	if v.State != nil && v.State.StateCode != "" {
		state = v.State.StateCode
	}
	return fmt.Sprintf("%s, %s, %s", v.Name, city, state)
}

// deriveSchedule extracts local date/time and derives the end time.
func deriveSchedule(raw models.RawEvent) (startDate, startTime, endTime string) {
	startDate, startTime, endTime = TIME_TBA, TIME_TBA, TIME_TBA

	if raw.Dates == nil || raw.Dates.Start == nil {
		return
	}
	if raw.Dates.Start.LocalDate != "" {
		startDate = raw.Dates.Start.LocalDate
	}
	if raw.Dates.Start.LocalTime != "" {
		startTime = raw.Dates.Start.LocalTime
		endTime = deriveEndTime(startTime)
	}
	return
}

// deriveEndTime adds EVENT_DURATION_HOURS to an "HH:MM[:SS]" start time,
// wrapping the hour modulo 24, keeping the minute and fixing seconds to 00.
// An unparseable start time yields TBA.
func deriveEndTime(startTime string) string {
	parts := strings.Split(startTime, ":")
	if len(parts) < 2 {
		return TIME_TBA
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TIME_TBA
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TIME_TBA
	}

	endHour := (hour + EVENT_DURATION_HOURS) % 24
	return fmt.Sprintf("%02d:%02d:00", endHour, minute)
}
