package campaign

import "sync"

// Event is a live per-row status update emitted during a run.
type Event struct {
	Row       int    `json:"row"`
	Email     string `json:"email"`
	Status    Status `json:"status"`
	Subject   string `json:"subject,omitempty"`
	Reason    Reason `json:"reason,omitempty"`
	RoleBased bool   `json:"role_based,omitempty"`
}

// Status is the row state reported over the progress feed.
type Status string

const (
	StatusComposing Status = "composing"
	StatusSent      Status = "sent"
	StatusSkipped   Status = "skipped"
)

const subscriberBuffer = 64

// Broadcaster fans progress events out to any number of subscribers.
// Publishing never blocks; a slow subscriber drops events rather than
// stalling the run.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new listener and returns its event channel.
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers ev to every subscriber that has buffer room.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
