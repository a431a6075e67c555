package redis

import (
	"context"
	"testing"
	"time"

	"chivent/db"
	"chivent/models"
)

func TestRedisPageCacheDAO_PutAndGetPage(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPageCacheDAO(mockClient)

	entry := models.CacheEntry{
		Payload: models.EventsPage{
			Embedded: &models.EmbeddedEvents{
				Events: []models.RawEvent{{ID: "ev-123", Name: "Test Event"}},
			},
			Page: models.PageInfo{Size: 50, Number: 0},
		},
		Expiry: time.Now().Add(time.Hour).UTC(),
	}

	// Act
	if err := dao.PutPage(0, 50, entry); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetPage(0, 50)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected a cache entry, got nil")
	}
	if len(got.Payload.RawEvents()) != 1 || got.Payload.RawEvents()[0].ID != "ev-123" {
		t.Errorf("Stored payload does not round-trip: %+v", got.Payload)
	}
	if !got.Expiry.Equal(entry.Expiry) {
		t.Errorf("Expected expiry %v, got %v", entry.Expiry, got.Expiry)
	}
}

func TestRedisPageCacheDAO_GetPage_Miss(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPageCacheDAO(mockClient)

	got, err := dao.GetPage(3, 50)
	if err != nil {
		t.Fatalf("Expected no error on a miss, got %v", err)
	}
	if got != nil {
		t.Fatalf("Expected nil entry on a miss, got %+v", got)
	}
}

func TestRedisPageCacheDAO_KeysArePerPageAndSize(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPageCacheDAO(mockClient)

	entry := models.CacheEntry{Expiry: time.Now().Add(time.Hour)}
	_ = dao.PutPage(0, 50, entry)
	_ = dao.PutPage(1, 50, entry)
	_ = dao.PutPage(0, 20, entry)

	keys, err := dao.ListCachedPageKeys()
	if err != nil {
		t.Fatalf("ListCachedPageKeys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("Expected 3 distinct cache keys, got %d (%v)", len(keys), keys)
	}
}
