package events

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus delivers events synchronously on the publishing goroutine. One bus
// is shared by every match of a tournament, so Publish never takes a lock: it
// reads an immutable routing table that Subscribe and Unsubscribe replace.
// Handlers may therefore subscribe or unsubscribe while an event is being
// delivered; the change applies from the next Publish.
type EventBus struct {
	mu        sync.Mutex // serializes table updates
	table     atomic.Pointer[routingTable]
	nextID    uint64
	published atomic.Int64
	logger    zerolog.Logger
}

// routingTable is never mutated once installed
type routingTable struct {
	// subscribers in subscription order
	subscribers []Subscriber
	handlers    map[string][]funcHandler
}

type funcHandler struct {
	id     string
	handle EventHandler
}

// NewEventBus creates a new event bus logging through the global logger
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates a new event bus with its own logger
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	eb := &EventBus{logger: logger.With().Str("component", "event_bus").Logger()}
	eb.table.Store(&routingTable{handlers: map[string][]funcHandler{}})
	return eb
}

// update installs a copy of the current table after mutate has changed it
func (eb *EventBus) update(mutate func(t *routingTable)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	old := eb.table.Load()
	next := &routingTable{
		subscribers: append([]Subscriber(nil), old.subscribers...),
		handlers:    make(map[string][]funcHandler, len(old.handlers)),
	}
	for typ, hs := range old.handlers {
		next.handlers[typ] = append([]funcHandler(nil), hs...)
	}
	mutate(next)
	eb.table.Store(next)
}

// Subscribe adds subscriber. A subscriber with the same ID is replaced in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.update(func(t *routingTable) {
		for i, s := range t.subscribers {
			if s.ID() == subscriber.ID() {
				t.subscribers[i] = subscriber
				return
			}
		}
		t.subscribers = append(t.subscribers, subscriber)
	})
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber, or a handler registered with
// SubscribeFunc, by its ID
func (eb *EventBus) Unsubscribe(id string) {
	eb.update(func(t *routingTable) {
		kept := t.subscribers[:0]
		for _, s := range t.subscribers {
			if s.ID() != id {
				kept = append(kept, s)
			}
		}
		t.subscribers = kept

		for typ, hs := range t.handlers {
			remaining := hs[:0]
			for _, h := range hs {
				if h.id != id {
					remaining = append(remaining, h)
				}
			}
			if len(remaining) == 0 {
				delete(t.handlers, typ)
			} else {
				t.handlers[typ] = remaining
			}
		}
	})
	eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
}

// SubscribeFunc registers handler for one event type. The returned ID can be
// passed to Unsubscribe.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	var id string
	eb.update(func(t *routingTable) {
		eb.nextID++
		id = fmt.Sprintf("%s#%d", eventType, eb.nextID)
		t.handlers[eventType] = append(t.handlers[eventType], funcHandler{id: id, handle: handler})
	})
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", id).
		Msg("Function handler added to event bus")
	return id
}

// Publish delivers event to the interested subscribers, then to the handlers
// of its type, each in registration order. A panicking receiver is logged and
// skipped.
func (eb *EventBus) Publish(event Event) {
	t := eb.table.Load()
	eventType := event.Type()
	eb.published.Add(1)

	eb.logger.Trace().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	for _, s := range t.subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(s.ID(), event, s.HandleEvent)
		}
	}
	for _, h := range t.handlers[eventType] {
		eb.deliver(h.id, event, h.handle)
	}
}

func (eb *EventBus) deliver(id string, event Event, handle EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver_id", id).
				Str("event_type", event.Type()).
				Str("game_id", event.GameID()).
				Interface("panic", r).
				Msg("Event receiver panicked")
		}
	}()
	handle(event)
}

// SubscriberCount is the number of Subscribe registrations
func (eb *EventBus) SubscriberCount() int {
	return len(eb.table.Load().subscribers)
}

// HandlerCount is the number of SubscribeFunc handlers for eventType
func (eb *EventBus) HandlerCount(eventType string) int {
	return len(eb.table.Load().handlers[eventType])
}

// Published counts the events published so far
func (eb *EventBus) Published() int64 {
	return eb.published.Load()
}
