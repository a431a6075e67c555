package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chivent/models"
	services "chivent/service"
	"chivent/session"
)

const CHECKOUT_MESSAGE = "Thank you for your purchase! (This is a demo, no actual purchase was made)"

// CartResponse is the payload for cart reads and mutations.
type CartResponse struct {
	Items     []models.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

type CheckoutResponse struct {
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

type CartHandler struct {
	cartService *services.CartService
	sessions    *session.Store
	logger      *zap.SugaredLogger
}

func NewCartHandler(
	cartService *services.CartService,
	sessions *session.Store,
	logger *zap.SugaredLogger,
) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		sessions:    sessions,
		logger:      logger,
	}
}

func (h *CartHandler) cartResponse(sess *session.Session) CartResponse {
	return CartResponse{
		Items:     sess.Cart,
		Total:     h.cartService.Total(sess),
		ItemCount: h.cartService.ItemCount(sess),
	}
}

// GetCart handles GET /v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)
	sess.GoToCart()

	writeJSON(w, http.StatusOK, h.cartResponse(sess))
}

// AddItem handles POST /v1/cart/items/{id}
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)
	eventID := mux.Vars(r)["id"]

	if _, err := h.cartService.Add(sess, eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			writeError(w, http.StatusNotFound, EVENT_NOT_FOUND_MESSAGE)
			return
		}
		h.logger.Errorf("[CartHandler] Add failed for event=%s: %v", eventID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, h.cartResponse(sess))
}

// RemoveItem handles DELETE /v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)
	eventID := mux.Vars(r)["id"]

	h.cartService.Remove(sess, eventID)

	writeJSON(w, http.StatusOK, h.cartResponse(sess))
}

// Checkout handles POST /v1/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(w, r, h.sessions)

	total := h.cartService.Checkout(sess)
	sess.GoToHome()

	writeJSON(w, http.StatusOK, CheckoutResponse{
		Message: CHECKOUT_MESSAGE,
		Total:   total,
	})
}
