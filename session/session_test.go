package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chivent/models"
)

func TestStore_GetOrCreate_MintsAndReuses(t *testing.T) {
	store := NewStore()

	sess := store.GetOrCreate("")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, PageHome, sess.Page)
	assert.Equal(t, 0, sess.Cursor)

	same := store.GetOrCreate(sess.ID)
	assert.Same(t, sess, same)

	other := store.GetOrCreate("unknown-id")
	assert.NotEqual(t, sess.ID, other.ID)
	assert.Equal(t, 2, store.Count())
}

func TestSession_RememberEvents_LastWriteWins(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("")

	sess.RememberEvents([]models.DisplayEvent{
		{ID: "E1", Title: "First Copy"},
		{ID: "E2", Title: "Other"},
	})
	sess.RememberEvents([]models.DisplayEvent{
		{ID: "E1", Title: "Later Copy"},
	})

	ev, ok := sess.LookupEvent("E1")
	require.True(t, ok)
	assert.Equal(t, "Later Copy", ev.Title)

	_, ok = sess.LookupEvent("missing")
	assert.False(t, ok)

	// nothing is ever pruned
	assert.Len(t, sess.EventsCache, 2)
}

func TestSession_Navigation(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("")

	sess.GoToEventDetails("E1")
	assert.Equal(t, PageEventDetails, sess.Page)
	assert.Equal(t, "E1", sess.SelectedEventID)

	sess.GoToCart()
	assert.Equal(t, PageCart, sess.Page)

	sess.GoToHome()
	assert.Equal(t, PageHome, sess.Page)
}

func TestSession_CursorNeverNegative(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("")

	sess.PrevPage()
	assert.Equal(t, 0, sess.Cursor)

	sess.NextPage()
	sess.NextPage()
	sess.PrevPage()
	assert.Equal(t, 1, sess.Cursor)
}

func TestPageName_Valid(t *testing.T) {
	assert.True(t, PageHome.Valid())
	assert.True(t, PageEventDetails.Valid())
	assert.True(t, PageCart.Valid())
	assert.False(t, PageName("checkout").Valid())
}
