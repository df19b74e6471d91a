package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishSubscribe(t *testing.T) {
	b := NewBroadcaster()
	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish(Event{Row: 3, Status: StatusSent})

	for _, ch := range []chan Event{first, second} {
		select {
		case ev := <-ch:
			assert.Equal(t, 3, ev.Row)
			assert.Equal(t, StatusSent, ev.Status)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open, "unsubscribe closes the channel")

	// Publishing after unsubscribe must not panic on the closed channel.
	b.Publish(Event{Row: 1})

	// Double unsubscribe is a no-op.
	b.Unsubscribe(ch)
}

func TestBroadcaster_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish(Event{Row: i})
	}

	require.Len(t, ch, subscriberBuffer)
	ev := <-ch
	assert.Equal(t, 0, ev.Row, "oldest events are kept, newest dropped")
}
