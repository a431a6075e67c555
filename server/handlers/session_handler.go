package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"chivent/session"
)

// SessionResponse is a snapshot of the caller's session state.
type SessionResponse struct {
	SessionID       string `json:"session_id"`
	Page            string `json:"page"`
	SelectedEventID string `json:"selected_event_id,omitempty"`
	Cursor          int    `json:"cursor"`
	CartItems       int    `json:"cart_items"`
	CachedEvents    int    `json:"cached_events"`
}

type SessionHandler struct {
	sessions *session.Store
	logger   *zap.SugaredLogger
}

func NewSessionHandler(sessions *session.Store, logger *zap.SugaredLogger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// GetSession handles GET /v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)

	cartItems := 0
	for _, line := range sess.Cart {
		cartItems += line.Quantity
	}

	writeJSON(w, http.StatusOK, SessionResponse{
		SessionID:       sess.ID,
		Page:            string(sess.Page),
		SelectedEventID: sess.SelectedEventID,
		Cursor:          sess.Cursor,
		CartItems:       cartItems,
		CachedEvents:    len(sess.EventsCache),
	})
}

// Ping handles GET /ping
func (h *SessionHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
