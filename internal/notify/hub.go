// Package notify fans change events out to every live subscriber.
//
// Delivery is best-effort: a subscriber whose queue is full misses the
// event. Nothing is acknowledged, retried or replayed; a client that
// reconnects has to re-read state on its own.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"clinic-booking-api/internal/logging"
)

// Event is one message pushed to subscribers.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// Publisher is what producers of events depend on.
type Publisher interface {
	Publish(e Event)
}

const DefaultBuffer = 64

type Subscription struct {
	ID uuid.UUID
	ch chan Event
}

// Events is closed once the subscription is removed from the hub.
func (s *Subscription) Events() <-chan Event { return s.ch }

type Hub struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*Subscription
	buf  int
	log  logging.Logger
}

func NewHub(buffer int, log logging.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &Hub{subs: make(map[uuid.UUID]*Subscription), buf: buffer, log: log}
}

func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{ID: uuid.New(), ch: make(chan Event, h.buf)}
	h.mu.Lock()
	h.subs[s.ID] = s
	h.mu.Unlock()
	return s
}

// Unsubscribe is safe to call more than once.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.ID]; !ok {
		return
	}
	delete(h.subs, s.ID)
	close(s.ch)
}

// Publish never blocks. Sends happen under the hub lock so a
// subscriber sees events in publish order and never a send on a
// closed channel.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.subs {
		select {
		case s.ch <- e:
		default:
			h.log.Warn(context.Background(), "subscriber queue full, event dropped",
				"subscriber", id.String(), "event", e.Name)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
