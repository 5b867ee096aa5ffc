package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir(), model.Collections())
	require.NoError(t, s.Open(context.Background()))
	return s
}

func TestInsertAssignsDistinctIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		id, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "p"})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "a"})
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, model.CollectionPatients, id1))

	id2, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "b"})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestMergeIsPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, model.CollectionInvoices, store.Record{
		"invoice_number": "INV-2024-010",
		"patient_id":     1,
		"doctor_id":      2,
		"amount":         500,
		"status":         "pending",
	})
	require.NoError(t, err)

	require.NoError(t, s.Merge(ctx, model.CollectionInvoices, id, store.Record{"status": "paid"}))

	rec, err := s.Get(ctx, model.CollectionInvoices, id)
	require.NoError(t, err)
	assert.Equal(t, "paid", rec["status"])
	assert.Equal(t, "INV-2024-010", rec["invoice_number"])
	assert.EqualValues(t, 500, rec["amount"])
	assert.EqualValues(t, 1, rec["patient_id"])
	assert.EqualValues(t, 2, rec["doctor_id"])
}

func TestMergeMissingRecordFails(t *testing.T) {
	s := newTestStore(t)

	err := s.Merge(context.Background(), model.CollectionInvoices, 999, store.Record{"status": "paid"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, model.CollectionDoctors, store.Record{"name": "Dr. X"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, model.CollectionDoctors, id))
	require.NoError(t, s.Remove(ctx, model.CollectionDoctors, id))

	recs, err := s.ListAll(ctx, model.CollectionDoctors)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestInsertWithExplicitIDConflicts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, model.CollectionPatients, store.Record{"id": int64(7), "name": "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	_, err = s.Insert(ctx, model.CollectionPatients, store.Record{"id": int64(7), "name": "b"})
	assert.True(t, apperrors.IsDuplicateKey(err))

	// The sequence must stay ahead of caller-supplied ids.
	next, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "c"})
	require.NoError(t, err)
	assert.EqualValues(t, 8, next)
}

func TestSeedThreeDoctors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names := []string{"Dr. Sarah Johnson", "Dr. Michael Chen", "Dr. Emily Brown"}
	for _, name := range names {
		_, err := s.Insert(ctx, model.CollectionDoctors, store.Record{"name": name})
		require.NoError(t, err)
	}

	recs, err := s.ListAll(ctx, model.CollectionDoctors)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	seen := map[int64]bool{}
	for _, rec := range recs {
		id, ok := store.IDOf(rec)
		require.True(t, ok)
		assert.False(t, seen[id])
		seen[id] = true
	}
	for id := int64(1); id <= 3; id++ {
		assert.True(t, seen[id])
	}
}

func TestInvoiceStatusUpdateFlow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, model.CollectionInvoices, store.Record{
		"invoice_number": "INV-2024-099",
		"amount":         500,
		"status":         "pending",
	})
	require.NoError(t, err)

	require.NoError(t, s.Merge(ctx, model.CollectionInvoices, id, store.Record{"status": "paid"}))

	recs, err := s.ListAll(ctx, model.CollectionInvoices)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "INV-2024-099", recs[0]["invoice_number"])
	assert.EqualValues(t, 500, recs[0]["amount"])
	assert.Equal(t, "paid", recs[0]["status"])
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := New(dir, model.Collections())
	require.NoError(t, s.Open(ctx))
	id, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "John Doe"})
	require.NoError(t, err)

	// A fresh handle over the same directory must see the same data
	// and keep allocating from the persisted sequence.
	reopened := New(dir, model.Collections())
	require.NoError(t, reopened.Open(ctx))

	recs, err := reopened.ListAll(ctx, model.CollectionPatients)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "John Doe", recs[0]["name"])

	next, err := reopened.Insert(ctx, model.CollectionPatients, store.Record{"name": "Jane Smith"})
	require.NoError(t, err)
	assert.Greater(t, next, id)
}

func TestGetMissingRecord(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), model.CollectionPatients, 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListAllReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, model.CollectionPatients, store.Record{"name": "John Doe"})
	require.NoError(t, err)

	recs, err := s.ListAll(ctx, model.CollectionPatients)
	require.NoError(t, err)
	recs[0]["name"] = "mutated"

	fresh, err := s.ListAll(ctx, model.CollectionPatients)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", fresh[0]["name"])
}
