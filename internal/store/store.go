// Package store defines the persistent collection contract shared by
// every entity kind: named collections of flat records keyed by a
// collection-scoped auto-increment id.
package store

import (
	"context"
	"encoding/json"
)

// Record is one entity instance as persisted: a flat field-value
// mapping plus an "id" field assigned by the store.
type Record = map[string]interface{}

// Driver is the storage backend. Two implementations exist: a
// file-backed local store and a postgres-backed one. All mutating
// operations are atomic per collection; there is no multi-collection
// transaction.
type Driver interface {
	// Open idempotently ensures the backing structure exists and creates
	// one collection per known entity kind if absent. Repeated opens
	// never destroy existing data.
	Open(ctx context.Context) error

	// ListAll returns every record in the collection. Order is not part
	// of the contract; callers sort explicitly when order matters.
	ListAll(ctx context.Context, collection string) ([]Record, error)

	// Get returns the record at id, or a NotFound error.
	Get(ctx context.Context, collection string, id int64) (Record, error)

	// Insert assigns a new monotonic collection-scoped id unless the
	// record carries one, persists the record and returns the id. A
	// caller-supplied id that already exists fails with DuplicateKey.
	Insert(ctx context.Context, collection string, rec Record) (int64, error)

	// Merge replaces only the fields present in partial, leaving the
	// rest untouched. Fails with NotFound if id is absent.
	Merge(ctx context.Context, collection string, id int64, partial Record) error

	// Remove deletes the record at id. Removing an absent id is a
	// no-op success.
	Remove(ctx context.Context, collection string, id int64) error

	Close() error
}

// IDOf extracts the id field from a raw record. JSON round-trips turn
// numbers into float64, so all numeric shapes are accepted.
func IDOf(rec Record) (int64, bool) {
	switch v := rec["id"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	default:
		return 0, false
	}
}

// RefID extracts a foreign id field from a raw record, tolerating the
// numeric shapes a JSON round-trip produces. Returns 0 when absent.
func RefID(rec Record, field string) int64 {
	switch v := rec[field].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}

// Encode converts a typed entity into its raw record form.
func Encode(v interface{}) (Record, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(buf, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Decode converts a raw record back into a typed entity.
func Decode(rec Record, out interface{}) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}

// DecodeAll converts a slice of raw records into typed entities.
func DecodeAll[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := Decode(rec, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
