package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"chivent/models"
)

// ReadEventsPageFromJSON loads an EventsPage from JSON on disk.
func ReadEventsPageFromJSON(filePath string) (*models.EventsPage, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var page models.EventsPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal EventsPage: %w", err)
	}
	return &page, nil
}
