// Package adapter bridges the store and the view layer. Each adapter
// owns the authoritative in-memory snapshot of one collection and
// re-fetches the whole collection after every mutation instead of
// patching the snapshot optimistically. Simplicity over latency is the
// explicit policy here; the testable properties of the system assume it.
package adapter

import (
	"context"
	"sync"

	"github.com/clinicore/admin-api/internal/store"
	"github.com/clinicore/admin-api/pkg/event"
)

// State is what the view layer renders: the snapshot plus the loading
// and error flags. Loading and error are distinct states and must be
// surfaced as such, never silently folded into stale data.
type State[T any] struct {
	Records []T
	Loading bool
	Err     error
}

// Adapter is the typed wrapper around one named collection.
//
// Overlapping mutations are not serialized: two back-to-back mutations
// race their re-fetches and the snapshot reflects whichever load
// completes last. Acceptable for a single-operator tool; the store
// itself always holds the truth and the next load converges on it.
type Adapter[T any] struct {
	drv        store.Driver
	collection string
	emitter    *event.Emitter

	mu      sync.RWMutex
	records []T
	loading bool
	err     error
	closed  bool
}

func New[T any](drv store.Driver, collection string, emitter *event.Emitter) *Adapter[T] {
	return &Adapter[T]{drv: drv, collection: collection, emitter: emitter}
}

func (a *Adapter[T]) Collection() string {
	return a.collection
}

// Load fetches the full collection into the snapshot. On failure the
// previous snapshot is kept; stale-but-present beats empty.
func (a *Adapter[T]) Load(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.loading = true
	a.mu.Unlock()

	recs, err := a.drv.ListAll(ctx, a.collection)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	if a.closed {
		// The page is gone; discard rather than update torn-down state.
		return nil
	}
	if err != nil {
		a.err = err
		return err
	}
	typed, decErr := store.DecodeAll[T](recs)
	if decErr != nil {
		a.err = decErr
		return decErr
	}
	a.records = typed
	a.err = nil
	return nil
}

// Create inserts the record and re-runs Load unconditionally, so the
// snapshot reflects store truth at the cost of an extra round trip.
func (a *Adapter[T]) Create(ctx context.Context, fields store.Record) (int64, error) {
	id, err := a.drv.Insert(ctx, a.collection, fields)
	if err != nil {
		a.setErr(err)
		return 0, err
	}
	a.emit(ctx, event.ActionCreated, id)
	if err := a.Load(ctx); err != nil {
		return id, err
	}
	return id, nil
}

// Update merges the given fields and re-fetches. Callers conventionally
// send the full edited object, not just the delta; merge semantics make
// both equivalent for present fields.
func (a *Adapter[T]) Update(ctx context.Context, id int64, fields store.Record) error {
	if err := a.drv.Merge(ctx, a.collection, id, fields); err != nil {
		a.setErr(err)
		return err
	}
	a.emit(ctx, event.ActionUpdated, id)
	return a.Load(ctx)
}

func (a *Adapter[T]) Delete(ctx context.Context, id int64) error {
	if err := a.drv.Remove(ctx, a.collection, id); err != nil {
		a.setErr(err)
		return err
	}
	a.emit(ctx, event.ActionDeleted, id)
	return a.Load(ctx)
}

// State returns a copy of the current snapshot and flags.
func (a *Adapter[T]) State() State[T] {
	a.mu.RLock()
	defer a.mu.RUnlock()
	records := make([]T, len(a.records))
	copy(records, a.records)
	return State[T]{Records: records, Loading: a.loading, Err: a.err}
}

// Close marks the adapter as torn down. In-flight loads that complete
// afterwards are discarded.
func (a *Adapter[T]) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

func (a *Adapter[T]) setErr(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.err = err
}

func (a *Adapter[T]) emit(ctx context.Context, action event.Action, id int64) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(ctx, event.EntityEvent{Collection: a.collection, Action: action, ID: id})
}
