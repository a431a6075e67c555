package ticketmaster

import (
	"net/url"
	"strconv"

	"chivent/api"
	"chivent/config"
	"chivent/models"
)

// TicketmasterApiClient embeds the common HTTPClient
type TicketmasterApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewTicketmasterApiClient creates a new instance of TicketmasterApiClient
func NewTicketmasterApiClient(httpClient *api.HTTPClient) *TicketmasterApiClient {
	return &TicketmasterApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey configures the Discovery API key sent with every request.
func (c *TicketmasterApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SearchEvents retrieves one page of Chicago events sorted by date ascending.
func (c *TicketmasterApiClient) SearchEvents(page int, size int) (*models.EventsPage, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("city", config.EVENTS_CITY)
	query.Set("stateCode", config.EVENTS_STATE_CODE)
	query.Set("size", strconv.Itoa(size))
	query.Set("page", strconv.Itoa(page))
	query.Set("sort", config.EVENTS_SORT)

	var response models.EventsPage
	err := c.Get("/events.json", query, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
