package models

// EventsPage is the raw Discovery API response for one (page, size) request.
type EventsPage struct {
	Embedded *EmbeddedEvents `json:"_embedded,omitempty"`
	Page     PageInfo        `json:"page"`
}

type EmbeddedEvents struct {
	Events []RawEvent `json:"events"`
}

type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// RawEvent mirrors a single Discovery API event record. Every field may be
// missing upstream, so pointers/zero values stand in for absence.
type RawEvent struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Info        string          `json:"info,omitempty"`
	PleaseNote  string          `json:"pleaseNote,omitempty"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url,omitempty"`
	Images      []EventImage    `json:"images,omitempty"`
	PriceRanges []PriceRange    `json:"priceRanges,omitempty"`
	Dates       *EventDates     `json:"dates,omitempty"`
	Embedded    *EmbeddedVenues `json:"_embedded,omitempty"`
}

type EventImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type PriceRange struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type EventDates struct {
	Start *EventStart `json:"start,omitempty"`
}

type EventStart struct {
	LocalDate string `json:"localDate,omitempty"`
	LocalTime string `json:"localTime,omitempty"`
}

type EmbeddedVenues struct {
	Venues []RawVenue `json:"venues"`
}

type RawVenue struct {
	Name  string      `json:"name,omitempty"`
	City  *VenueCity  `json:"city,omitempty"`
	State *VenueState `json:"state,omitempty"`
}

type VenueCity struct {
	Name string `json:"name,omitempty"`
}

type VenueState struct {
	StateCode string `json:"stateCode,omitempty"`
}

// RawEvents returns the embedded event list. A missing "_embedded" object
// means zero events, not an error.
func (p *EventsPage) RawEvents() []RawEvent {
	if p == nil || p.Embedded == nil {
		return nil
	}
	return p.Embedded.Events
}
