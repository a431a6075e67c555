package models

import "fmt"

// DisplayEvent is the normalized, display-ready form of a raw event record.
// One is only produced when both HasImage and HasPrice are true.
type DisplayEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       string  `json:"price"`
	PriceValue  float64 `json:"price_value"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	URL         string  `json:"url"`

	HasPrice       bool `json:"has_price"`
	HasDescription bool `json:"has_description"`
	HasImage       bool `json:"has_image"`
}

func (e *DisplayEvent) ToString() string {
	return fmt.Sprintf("DisplayEvent(id=%s, title=%s, price=%s, location=%s)",
		e.ID, e.Title, e.Price, e.Location)
}
