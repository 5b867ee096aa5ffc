// Package event fans entity mutation events out to in-process
// subscribers and, when a broker is configured, to an external channel.
package event

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/admin-api/pkg/messaging"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// EntityEvent describes one committed mutation against a collection.
type EntityEvent struct {
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	ID         int64     `json:"id"`
	At         time.Time `json:"at"`
}

type Subscriber func(ctx context.Context, evt EntityEvent)

// Emitter delivers events synchronously to subscribers in registration
// order. Broker delivery is best-effort: a publish failure is logged,
// never propagated to the mutating caller.
type Emitter struct {
	mu      sync.RWMutex
	subs    []Subscriber
	broker  messaging.Broker
	channel string
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// WithBroker republishes every event on the given broker channel.
func (e *Emitter) WithBroker(broker messaging.Broker, channel string) *Emitter {
	e.broker = broker
	e.channel = channel
	return e
}

func (e *Emitter) Subscribe(fn Subscriber) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

func (e *Emitter) Emit(ctx context.Context, evt EntityEvent) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	e.mu.RLock()
	subs := make([]Subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx, evt)
	}

	if e.broker != nil {
		msg := messaging.Message{Type: string(evt.Action), Payload: evt}
		if err := e.broker.Publish(ctx, e.channel, msg); err != nil {
			log.Warn().Err(err).Str("collection", evt.Collection).Msg("event publish failed")
		}
	}
}
