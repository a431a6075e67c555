package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chivent/models"
	services "chivent/service"
	"chivent/session"
)

func newCartHandlerFixture() (*CartHandler, *session.Session) {
	log := zap.NewNop().Sugar()
	store := session.NewStore()
	sess := store.GetOrCreate("")
	sess.RememberEvents([]models.DisplayEvent{
		{ID: "E1", Title: "Blues Night", Price: "$25.00", PriceValue: 25.0},
		{ID: "E2", Title: "Jazz Brunch", Price: "$40.00", PriceValue: 40.0},
	})
	return NewCartHandler(services.NewCartService(log), store, log), sess
}

func TestAddItem_MergesQuantity(t *testing.T) {
	handler, sess := newCartHandlerFixture()

	rr := doRequest(handler.AddItem, "POST", "/v1/cart/items/E1", sess.ID,
		map[string]string{"id": "E1"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(handler.AddItem, "POST", "/v1/cart/items/E1", sess.ID,
		map[string]string{"id": "E1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 50.0, resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestAddItem_UnknownEvent(t *testing.T) {
	handler, sess := newCartHandlerFixture()

	rr := doRequest(handler.AddItem, "POST", "/v1/cart/items/nope", sess.ID,
		map[string]string{"id": "nope"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRemoveItem(t *testing.T) {
	handler, sess := newCartHandlerFixture()

	doRequest(handler.AddItem, "POST", "/v1/cart/items/E1", sess.ID, map[string]string{"id": "E1"})
	doRequest(handler.AddItem, "POST", "/v1/cart/items/E2", sess.ID, map[string]string{"id": "E2"})

	rr := doRequest(handler.RemoveItem, "DELETE", "/v1/cart/items/E1", sess.ID,
		map[string]string{"id": "E1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "E2", resp.Items[0].EventID)

	// removing an absent id is a no-op
	rr = doRequest(handler.RemoveItem, "DELETE", "/v1/cart/items/E1", sess.ID,
		map[string]string{"id": "E1"})
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
}

func TestGetCart_NavigatesToCartPage(t *testing.T) {
	handler, sess := newCartHandlerFixture()

	rr := doRequest(handler.GetCart, "GET", "/v1/cart", sess.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
	assert.Equal(t, session.PageCart, sess.Page)
}

func TestCheckout_ClearsCart(t *testing.T) {
	handler, sess := newCartHandlerFixture()

	doRequest(handler.AddItem, "POST", "/v1/cart/items/E1", sess.ID, map[string]string{"id": "E1"})
	doRequest(handler.AddItem, "POST", "/v1/cart/items/E2", sess.ID, map[string]string{"id": "E2"})

	rr := doRequest(handler.Checkout, "POST", "/v1/cart/checkout", sess.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CHECKOUT_MESSAGE, resp.Message)
	assert.Equal(t, 65.0, resp.Total)
	assert.Empty(t, sess.Cart)
}
