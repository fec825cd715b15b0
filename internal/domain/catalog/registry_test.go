package catalog

import (
	"sync"
	"testing"

	"plumbing_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SwapRebuildsIndex(t *testing.T) {
	r := NewRegistry(entities.DefaultSuppliers())

	_, ok := r.Index(entities.SupplierSupply2).Lookup("pipe")
	assert.False(t, ok)

	n, err := r.Swap(entities.SupplierSupply2, []entities.CatalogRecord{
		{Description: "Pipe", Date: day("2023-01-01"), UnitPrice: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	before := r.Index(entities.SupplierSupply2)

	_, err = r.Swap(entities.SupplierSupply2, []entities.CatalogRecord{
		{Description: "Pipe", Date: day("2024-01-01"), UnitPrice: 8},
	})
	require.NoError(t, err)

	e, _ := r.Index(entities.SupplierSupply2).Lookup("pipe")
	assert.Equal(t, 8.0, e.Price)

	old, _ := before.Lookup("pipe")
	assert.Equal(t, 5.0, old.Price, "previous index must not be mutated")

	_, ok = r.Index(entities.SupplierSupply1).Lookup("pipe")
	assert.False(t, ok, "other suppliers untouched")
}

func TestRegistry_UnknownSupplier(t *testing.T) {
	r := NewRegistry(entities.DefaultSuppliers())
	_, err := r.Swap("supply9", nil)
	assert.ErrorIs(t, err, ErrUnknownSupplier)

	_, ok := r.Supplier("supply9")
	assert.False(t, ok)

	s, ok := r.Supplier(entities.SupplierSupply3)
	require.True(t, ok)
	assert.Equal(t, "LPS", s.Code)
}

func TestRegistry_RecordsAreCopied(t *testing.T) {
	r := NewRegistry(entities.DefaultSuppliers())
	src := []entities.CatalogRecord{{Description: "Cap", UnitPrice: 1}}
	_, err := r.Swap(entities.SupplierSupply1, src)
	require.NoError(t, err)

	src[0].UnitPrice = 99
	got := r.Records(entities.SupplierSupply1)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].UnitPrice)
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	r := NewRegistry(entities.DefaultSuppliers())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.Swap(entities.SupplierSupply1, []entities.CatalogRecord{{Description: "Cap", UnitPrice: 1}})
		}()
		go func() {
			defer wg.Done()
			_ = r.Suggestions()
			_, _ = r.Index(entities.SupplierSupply1).Lookup("cap")
		}()
	}
	wg.Wait()

	sugg := r.Suggestions()
	assert.Equal(t, []string{"Cap"}, sugg[entities.SupplierSupply1])
	assert.Empty(t, sugg[entities.SupplierSupply4])
}
