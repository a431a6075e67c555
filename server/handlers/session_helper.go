package handlers

import (
	"encoding/json"
	"net/http"

	"chivent/session"
)

// SESSION_ID_HEADER carries the session id both ways: clients send the one
// they were given, responses always echo the resolved id back.
const SESSION_ID_HEADER = "X-Session-ID"

// resolveSession finds or creates the caller's session and stamps its id on
// the response.
func resolveSession(w http.ResponseWriter, r *http.Request, store *session.Store) *session.Session {
	sess := store.GetOrCreate(r.Header.Get(SESSION_ID_HEADER))
	w.Header().Set(SESSION_ID_HEADER, sess.ID)
	return sess
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
