package session

import (
	"sync"

	"github.com/google/uuid"

	"chivent/models"
)

// PageName is the navigation state a session can be on.
type PageName string

const (
	PageHome         PageName = "home"
	PageEventDetails PageName = "event_details"
	PageCart         PageName = "cart"
)

func (p PageName) Valid() bool {
	switch p {
	case PageHome, PageEventDetails, PageCart:
		return true
	}
	return false
}

// Session bundles all per-user state: navigation, pagination cursor, the
// accumulated events cache, and the cart. It is confined to one logical
// thread of control, so it carries no locking of its own.
type Session struct {
	ID              string
	Page            PageName
	SelectedEventID string
	Cursor          int
	EventsCache     map[string]models.DisplayEvent
	Cart            []models.CartLine
}

func newSession(id string) *Session {
	return &Session{
		ID:          id,
		Page:        PageHome,
		EventsCache: make(map[string]models.DisplayEvent),
		Cart:        []models.CartLine{},
	}
}

// RememberEvents merges display events into the session events cache.
// The cache is never pruned; a later copy of the same id wins.
func (s *Session) RememberEvents(events []models.DisplayEvent) {
	for _, ev := range events {
		s.EventsCache[ev.ID] = ev
	}
}

// LookupEvent returns the cached display event for an id, if any.
func (s *Session) LookupEvent(id string) (models.DisplayEvent, bool) {
	ev, ok := s.EventsCache[id]
	return ev, ok
}

// Navigation control functions

func (s *Session) GoToHome() {
	s.Page = PageHome
}

func (s *Session) GoToEventDetails(eventID string) {
	s.SelectedEventID = eventID
	s.Page = PageEventDetails
}

func (s *Session) GoToCart() {
	s.Page = PageCart
}

// NextPage advances the user-visible pagination cursor.
func (s *Session) NextPage() {
	s.Cursor++
}

// PrevPage moves the cursor back, never below zero.
func (s *Session) PrevPage() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// Store keeps all live sessions keyed by id. Only the map itself is guarded;
// each session is still accessed from one request at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for the given id, minting a new id when
// the id is empty or unknown.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if sess, ok := st.sessions[id]; ok {
			return sess
		}
	}

	sess := newSession(uuid.NewString())
	st.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for an id without creating one.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
