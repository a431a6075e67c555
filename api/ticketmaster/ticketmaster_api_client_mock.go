package ticketmaster

import (
	"fmt"

	"chivent/models"
	"chivent/util"
)

// TicketmasterApiClientMock embeds mocked logic for the ticketmaster api client
type TicketmasterApiClientMock struct {
	fixturePath string
}

// NewTicketmasterApiClientMock creates a new instance of TicketmasterApiClientMock
func NewTicketmasterApiClientMock(fixturePath string) *TicketmasterApiClientMock {
	return &TicketmasterApiClientMock{fixturePath: fixturePath}
}

// SetAPIKey is a no-op on the mock.
func (c *TicketmasterApiClientMock) SetAPIKey(apiKey string) {}

// SearchEvents serves the fixture page for page 0 and an empty page after
// that, so the aggregator sees an exhausted upstream instead of looping.
func (c *TicketmasterApiClientMock) SearchEvents(page int, size int) (*models.EventsPage, error) {
	if page > 0 {
		return &models.EventsPage{}, nil
	}

	response, err := util.ReadEventsPageFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read events page response from json")
		return nil, err
	}

	return response, nil
}
