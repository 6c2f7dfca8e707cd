package notifier

import (
	"sync"

	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

// EventCartUpdated is the single broadcast event type, fired after every
// successful cart mutation.
const EventCartUpdated = "cart-updated"

// CartTotals is the rounded money block carried on every event.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Tip      decimal.Decimal `json:"tip"`
	Total    decimal.Decimal `json:"total"`
}

// Event is the cart-updated payload delivered to subscribers.
type Event struct {
	Type    string            `json:"type"`
	Items   []model.LineItem  `json:"items"`
	Total   decimal.Decimal   `json:"total"`
	Count   int               `json:"count"`
	Summary model.CartSummary `json:"summary"`
	Cart    CartTotals        `json:"cart"`
}

// Handler receives cart events. Delivery is synchronous and fire-and-forget.
type Handler func(Event)

// Notifier fans a cart event out to the currently subscribed handlers.
// There is no replay: a handler subscribed after a mutation does not see it.
type Notifier struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
}

func New() *Notifier {
	return &Notifier{handlers: make(map[int]Handler)}
}

// Subscribe registers a handler and returns its cancellation handle.
func (n *Notifier) Subscribe(h Handler) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.handlers[id] = h
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.handlers, id)
		n.mu.Unlock()
	}
}

// Publish delivers the event to every current subscriber on the calling
// goroutine, in unspecified order.
func (n *Notifier) Publish(event Event) {
	n.mu.RLock()
	handlers := make([]Handler, 0, len(n.handlers))
	for _, h := range n.handlers {
		handlers = append(handlers, h)
	}
	n.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// SubscriberCount reports how many handlers are currently registered.
func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.handlers)
}
