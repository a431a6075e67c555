package models

// CartLine is one quantity-bearing row in a session's cart. Title and price
// are snapshotted at add time and never refreshed from the events cache.
type CartLine struct {
	EventID    string  `json:"event_id"`
	Title      string  `json:"title"`
	Price      string  `json:"price"`
	PriceValue float64 `json:"price_value"`
	Quantity   int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l *CartLine) Subtotal() float64 {
	return l.PriceValue * float64(l.Quantity)
}
