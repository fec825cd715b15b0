package catalog

import (
	"errors"
	"sync"

	"plumbing_estimator/internal/domain/entities"
)

var ErrUnknownSupplier = errors.New("unknown supplier")

// Registry holds every supplier's catalog and the index derived from it.
// An index is replaced wholesale on Swap, never edited in place.
type Registry struct {
	mu        sync.RWMutex
	suppliers []entities.Supplier
	records   map[entities.SupplierID][]entities.CatalogRecord
	indexes   map[entities.SupplierID]Index
}

func NewRegistry(suppliers []entities.Supplier) *Registry {
	r := &Registry{
		suppliers: append([]entities.Supplier(nil), suppliers...),
		records:   make(map[entities.SupplierID][]entities.CatalogRecord, len(suppliers)),
		indexes:   make(map[entities.SupplierID]Index, len(suppliers)),
	}
	for _, s := range suppliers {
		r.indexes[s.ID] = Build(nil)
	}
	return r
}

func (r *Registry) Suppliers() []entities.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.Supplier(nil), r.suppliers...)
}

func (r *Registry) Supplier(id entities.SupplierID) (entities.Supplier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Supplier{}, false
}

// Swap replaces a supplier's catalog and rebuilds its index. It returns the
// number of indexed descriptions.
func (r *Registry) Swap(id entities.SupplierID, records []entities.CatalogRecord) (int, error) {
	if _, ok := r.Supplier(id); !ok {
		return 0, ErrUnknownSupplier
	}
	owned := append([]entities.CatalogRecord(nil), records...)
	ix := Build(owned)

	r.mu.Lock()
	r.records[id] = owned
	r.indexes[id] = ix
	r.mu.Unlock()
	return ix.Len(), nil
}

// Index returns the supplier's current index; unknown suppliers get an empty one.
func (r *Registry) Index(id entities.SupplierID) Index {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexes[id]
}

func (r *Registry) Records(id entities.SupplierID) []entities.CatalogRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.CatalogRecord(nil), r.records[id]...)
}

// Suggestions returns the description suggestions of every supplier, keyed
// by supplier id.
func (r *Registry) Suggestions() map[entities.SupplierID][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[entities.SupplierID][]string, len(r.indexes))
	for id, ix := range r.indexes {
		out[id] = ix.Suggestions()
	}
	return out
}
