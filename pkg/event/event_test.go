package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitDeliversInOrder(t *testing.T) {
	e := NewEmitter()

	var first, second []EntityEvent
	e.Subscribe(func(ctx context.Context, evt EntityEvent) { first = append(first, evt) })
	e.Subscribe(func(ctx context.Context, evt EntityEvent) { second = append(second, evt) })

	e.Emit(context.Background(), EntityEvent{Collection: "patients", Action: ActionCreated, ID: 1})
	e.Emit(context.Background(), EntityEvent{Collection: "patients", Action: ActionDeleted, ID: 1})

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	assert.Equal(t, ActionCreated, first[0].Action)
	assert.Equal(t, ActionDeleted, first[1].Action)
}

func TestEmitStampsTime(t *testing.T) {
	e := NewEmitter()

	var got EntityEvent
	e.Subscribe(func(ctx context.Context, evt EntityEvent) { got = evt })
	e.Emit(context.Background(), EntityEvent{Collection: "doctors", Action: ActionCreated, ID: 2})

	assert.False(t, got.At.IsZero())
}
