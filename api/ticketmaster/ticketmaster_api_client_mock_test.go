package ticketmaster

import (
	"testing"
)

const FIXTURE_PATH = "../../resources/events_page_response.json"

func TestMockClient_ServesFixturePage(t *testing.T) {
	client := NewTicketmasterApiClientMock(FIXTURE_PATH)

	page, err := client.SearchEvents(0, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.RawEvents()) == 0 {
		t.Fatal("expected fixture page to contain raw events")
	}
}

func TestMockClient_ExhaustsAfterFirstPage(t *testing.T) {
	client := NewTicketmasterApiClientMock(FIXTURE_PATH)

	page, err := client.SearchEvents(1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.RawEvents()) != 0 {
		t.Fatalf("expected an empty page past page 0, got %d events", len(page.RawEvents()))
	}
}
