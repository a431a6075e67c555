package server

import (
	"github.com/gorilla/mux"

	"chivent/server/handlers"
)

type Router struct {
	eventHandler   *handlers.EventHandler
	cartHandler    *handlers.CartHandler
	sessionHandler *handlers.SessionHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	eventHandler *handlers.EventHandler,
	cartHandler *handlers.CartHandler,
	sessionHandler *handlers.SessionHandler,
	router *mux.Router) *Router {
	return &Router{
		eventHandler:   eventHandler,
		cartHandler:    cartHandler,
		sessionHandler: sessionHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?page={page(int >= 0)}; the chart route must precede {id}
	r.router.HandleFunc("/v1/events", r.eventHandler.GetFeed).Methods("GET")
	r.router.HandleFunc("/v1/events/chart", r.eventHandler.GetFeedChart).Methods("GET")
	r.router.HandleFunc("/v1/events/{id}", r.eventHandler.GetEvent).Methods("GET")

	r.router.HandleFunc("/v1/cart", r.cartHandler.GetCart).Methods("GET")
	r.router.HandleFunc("/v1/cart/items/{id}", r.cartHandler.AddItem).Methods("POST")
	r.router.HandleFunc("/v1/cart/items/{id}", r.cartHandler.RemoveItem).Methods("DELETE")
	r.router.HandleFunc("/v1/cart/checkout", r.cartHandler.Checkout).Methods("POST")

	r.router.HandleFunc("/v1/session", r.sessionHandler.GetSession).Methods("GET")

	r.router.HandleFunc("/ping", r.sessionHandler.Ping).Methods("GET")
}
