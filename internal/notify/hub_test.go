package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesEverySubscriber(t *testing.T) {
	h := NewHub(4, nil)
	a := h.Subscribe()
	b := h.Subscribe()
	require.Equal(t, 2, h.Count())

	h.Publish(Event{Name: "appointmentUpdated", Data: "x"})

	for _, s := range []*Subscription{a, b} {
		select {
		case e := <-s.Events():
			assert.Equal(t, "appointmentUpdated", e.Name)
			assert.Equal(t, "x", e.Data)
		default:
			t.Fatalf("subscriber %s got nothing", s.ID)
		}
	}
}

func TestPublishPreservesOrder(t *testing.T) {
	h := NewHub(16, nil)
	s := h.Subscribe()

	for i := 0; i < 10; i++ {
		h.Publish(Event{Name: "n", Data: i})
	}
	for i := 0; i < 10; i++ {
		e := <-s.Events()
		assert.Equal(t, i, e.Data)
	}
}

func TestPublishDropsWhenFull(t *testing.T) {
	h := NewHub(1, nil)
	s := h.Subscribe()

	h.Publish(Event{Name: "first"})
	h.Publish(Event{Name: "second"}) // must not block

	e := <-s.Events()
	assert.Equal(t, "first", e.Name)
	select {
	case e := <-s.Events():
		t.Fatalf("unexpected event %q", e.Name)
	default:
	}
}

func TestUnsubscribeClosesAndStopsDelivery(t *testing.T) {
	h := NewHub(4, nil)
	s := h.Subscribe()
	other := h.Subscribe()

	h.Unsubscribe(s)
	h.Unsubscribe(s) // idempotent
	assert.Equal(t, 1, h.Count())

	_, open := <-s.Events()
	assert.False(t, open)

	h.Publish(Event{Name: "after"})
	e := <-other.Events()
	assert.Equal(t, "after", e.Name)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	h := NewHub(0, nil)
	h.Publish(Event{Name: "nobody"})
	assert.Equal(t, 0, h.Count())
}
