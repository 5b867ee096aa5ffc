package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/store"
	"github.com/clinicore/admin-api/internal/store/file"
)

func newFileDriver(t *testing.T) store.Driver {
	t.Helper()
	drv := file.New(t.TempDir(), model.Collections())
	require.NoError(t, drv.Open(context.Background()))
	return drv
}

func TestResolvesNames(t *testing.T) {
	drv := newFileDriver(t)
	ctx := context.Background()

	patientID, err := drv.Insert(ctx, model.CollectionPatients, store.Record{"name": "John Doe"})
	require.NoError(t, err)
	doctorID, err := drv.Insert(ctx, model.CollectionDoctors, store.Record{"name": "Dr. Sarah Johnson"})
	require.NoError(t, err)
	invoiceID, err := drv.Insert(ctx, model.CollectionInvoices, store.Record{"invoice_number": "INV-2024-001"})
	require.NoError(t, err)

	r := New(drv)
	assert.Equal(t, "John Doe", r.PatientName(ctx, patientID))
	assert.Equal(t, "Dr. Sarah Johnson", r.DoctorName(ctx, doctorID))
	assert.Equal(t, "INV-2024-001", r.InvoiceNumber(ctx, invoiceID))
}

func TestOrphanReferenceResolvesEmpty(t *testing.T) {
	r := New(newFileDriver(t))
	assert.Equal(t, "", r.PatientName(context.Background(), 999))
	assert.Equal(t, "", r.PatientName(context.Background(), 0))
}

func TestLookupsAreCached(t *testing.T) {
	drv := newFileDriver(t)
	ctx := context.Background()

	id, err := drv.Insert(ctx, model.CollectionPatients, store.Record{"name": "John Doe"})
	require.NoError(t, err)

	r := New(drv)
	require.Equal(t, "John Doe", r.PatientName(ctx, id))

	// A cached entry survives the record's deletion until invalidated.
	require.NoError(t, drv.Remove(ctx, model.CollectionPatients, id))
	assert.Equal(t, "John Doe", r.PatientName(ctx, id))

	r.Invalidate(model.CollectionPatients)
	assert.Equal(t, "", r.PatientName(ctx, id))
}
