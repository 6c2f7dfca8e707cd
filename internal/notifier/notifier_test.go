package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_DeliversToAllSubscribers(t *testing.T) {
	n := New()

	var first, second int
	n.Subscribe(func(Event) { first++ })
	n.Subscribe(func(Event) { second++ })

	n.Publish(Event{Type: EventCartUpdated})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	n := New()

	var calls int
	unsubscribe := n.Subscribe(func(Event) { calls++ })

	n.Publish(Event{Type: EventCartUpdated})
	unsubscribe()
	n.Publish(Event{Type: EventCartUpdated})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, n.SubscriberCount())
}

func TestNotifier_NoReplayForLateSubscribers(t *testing.T) {
	n := New()

	n.Publish(Event{Type: EventCartUpdated})

	var calls int
	n.Subscribe(func(Event) { calls++ })

	assert.Equal(t, 0, calls)
}
