// Package resolve looks up display names for cross-entity references.
// References are plain foreign ids with no enforced integrity, so an
// orphan reference resolves to an empty name rather than an error.
package resolve

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Resolver caches id-to-display lookups so list views expanding three
// references per row do not hammer the store.
type Resolver struct {
	drv   store.Driver
	cache *gocache.Cache
}

func New(drv store.Driver) *Resolver {
	return &Resolver{
		drv:   drv,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

func (r *Resolver) PatientName(ctx context.Context, id int64) string {
	return r.lookup(ctx, model.CollectionPatients, id, "name")
}

func (r *Resolver) DoctorName(ctx context.Context, id int64) string {
	return r.lookup(ctx, model.CollectionDoctors, id, "name")
}

func (r *Resolver) InvoiceNumber(ctx context.Context, id int64) string {
	return r.lookup(ctx, model.CollectionInvoices, id, "invoice_number")
}

// Invalidate drops cached entries for one collection. Called on
// mutation events so renames show up without waiting out the TTL.
func (r *Resolver) Invalidate(collection string) {
	for key := range r.cache.Items() {
		if len(key) > len(collection) && key[:len(collection)] == collection {
			r.cache.Delete(key)
		}
	}
}

func (r *Resolver) lookup(ctx context.Context, collection string, id int64, field string) string {
	if id == 0 {
		return ""
	}
	key := fmt.Sprintf("%s/%d/%s", collection, id, field)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string)
	}

	rec, err := r.drv.Get(ctx, collection, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			r.cache.Set(key, "", gocache.DefaultExpiration)
		}
		return ""
	}
	name, _ := rec[field].(string)
	r.cache.Set(key, name, gocache.DefaultExpiration)
	return name
}
