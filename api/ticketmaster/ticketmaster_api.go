package ticketmaster

import (
	"chivent/models"
)

// TicketmasterAPI defines the interface for interacting with the Discovery API
type TicketmasterAPI interface {
	SearchEvents(page int, size int) (*models.EventsPage, error)
	SetAPIKey(apiKey string)
}
