package services

import (
	"errors"

	"go.uber.org/zap"

	"chivent/models"
	"chivent/session"
)

// ErrEventNotFound is returned when a cart operation references an event id
// with no entry in the session events cache.
var ErrEventNotFound = errors.New("event not found")

// CartService operates on a session's cart lines. All operations besides Add
// are total functions over the current line list.
type CartService struct {
	logger *zap.SugaredLogger
}

func NewCartService(logger *zap.SugaredLogger) *CartService {
	return &CartService{logger: logger}
}

// Add puts the event in the cart, merging by event id: an already-present
// event gets its quantity incremented instead of a duplicate line. Title and
// price are snapshotted from the events cache at add time.
func (cs *CartService) Add(sess *session.Session, eventID string) (*models.CartLine, error) {
	ev, ok := sess.LookupEvent(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}

	for i := range sess.Cart {
		if sess.Cart[i].EventID == eventID {
			sess.Cart[i].Quantity++
			return &sess.Cart[i], nil
		}
	}

	sess.Cart = append(sess.Cart, models.CartLine{
		EventID:    ev.ID,
		Title:      ev.Title,
		Price:      ev.Price,
		PriceValue: ev.PriceValue,
		Quantity:   1,
	})
	return &sess.Cart[len(sess.Cart)-1], nil
}

// Remove drops the line with the given event id; a no-op when absent.
func (cs *CartService) Remove(sess *session.Session, eventID string) {
	lines := sess.Cart[:0]
	for _, line := range sess.Cart {
		if line.EventID != eventID {
			lines = append(lines, line)
		}
	}
	sess.Cart = lines
}

// Total sums price_value * quantity over all lines.
func (cs *CartService) Total(sess *session.Session) float64 {
	total := 0.0
	for i := range sess.Cart {
		total += sess.Cart[i].Subtotal()
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (cs *CartService) ItemCount(sess *session.Session) int {
	count := 0
	for _, line := range sess.Cart {
		count += line.Quantity
	}
	return count
}

// Checkout clears all lines unconditionally and returns the total the cart
// held. There is no payment or persistence; it is a confirmation signal only.
func (cs *CartService) Checkout(sess *session.Session) float64 {
	total := cs.Total(sess)
	sess.Cart = []models.CartLine{}
	cs.logger.Infof("[CartService] Checkout for session=%s total=%.2f", sess.ID, total)
	return total
}
