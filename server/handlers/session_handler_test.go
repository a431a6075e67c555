package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chivent/models"
	"chivent/session"
)

func TestGetSession_Snapshot(t *testing.T) {
	log := zap.NewNop().Sugar()
	store := session.NewStore()
	sess := store.GetOrCreate("")
	sess.RememberEvents([]models.DisplayEvent{{ID: "E1", Title: "Blues Night"}})
	sess.Cart = append(sess.Cart, models.CartLine{EventID: "E1", Quantity: 2})
	sess.GoToEventDetails("E1")
	handler := NewSessionHandler(store, log)

	rr := doRequest(handler.GetSession, "GET", "/v1/session", sess.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, sess.ID, resp.SessionID)
	assert.Equal(t, "event_details", resp.Page)
	assert.Equal(t, "E1", resp.SelectedEventID)
	assert.Equal(t, 2, resp.CartItems)
	assert.Equal(t, 1, resp.CachedEvents)
}

func TestPing(t *testing.T) {
	log := zap.NewNop().Sugar()
	handler := NewSessionHandler(session.NewStore(), log)

	rr := doRequest(handler.Ping, "GET", "/ping", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
