package pubsub

import (
	"sync"

	"eats-backend/models"
)

type Topic string

const (
	TopicNewPendingOrder Topic = "NEW_PENDING_ORDER"
	TopicNewCookedOrder  Topic = "NEW_COOKED_ORDER"
	TopicNewOrderUpdate  Topic = "NEW_ORDER_UPDATE"
)

// OrderEvent is what flows through every topic. OwnerID is only
// meaningful on the pending-order topic, where it carries the id of the
// restaurant owner the order belongs to.
type OrderEvent struct {
	Order   *models.Order
	OwnerID uint
}

// Filter decides per subscriber whether a published event is delivered.
// A nil filter accepts everything.
type Filter func(OrderEvent) bool

type Subscription struct {
	C      chan OrderEvent
	topic  Topic
	filter Filter
	hub    *Hub
	once   sync.Once
}

// Close deregisters the subscription and closes its channel. Deregistration
// takes the hub lock, so it waits out any publish in flight; the channel is
// only closed once no publisher can see it. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.C)
	})
}

// Hub is the process-wide notification bridge: a registry of
// topic -> (filter, channel) pairs. Publishing walks the registered
// entries synchronously; there is no persistence and no replay, a
// subscriber only sees events published while it is registered.
type Hub struct {
	mu   sync.Mutex
	subs map[Topic][]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[Topic][]*Subscription),
	}
}

const subscriberBuffer = 16

func (h *Hub) Subscribe(topic Topic, filter Filter) *Subscription {
	sub := &Subscription{
		C:      make(chan OrderEvent, subscriberBuffer),
		topic:  topic,
		filter: filter,
		hub:    h,
	}
	h.mu.Lock()
	h.subs[topic] = append(h.subs[topic], sub)
	h.mu.Unlock()
	return sub
}

// Publish delivers ev to every matching subscriber of the topic. The hub
// lock is held across the sends: they never block (a subscriber whose
// buffer is full is skipped), and a subscription cannot be closed while a
// publish still holds a reference to its channel.
func (h *Hub) Publish(topic Topic, ev OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[topic] {
		if sub.filter != nil && !sub.filter(ev) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
		}
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.subs[sub.topic]
	for i, s := range list {
		if s == sub {
			h.subs[sub.topic] = append(list[:i], list[i+1:]...)
			break
		}
	}
}
