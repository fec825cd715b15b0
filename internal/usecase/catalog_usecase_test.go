package usecase

import (
	"context"
	"errors"
	"testing"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
	mock_interfaces "plumbing_estimator/internal/usecase/interfaces/mocks"
	"plumbing_estimator/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ReplaceCatalog(t *testing.T) {
	t.Run("swaps the index", func(t *testing.T) {
		registry := catalog.NewRegistry(entities.DefaultSuppliers())
		uc := NewCatalogUseCase(registry, nil, nil, nil)

		n, err := uc.ReplaceCatalog(context.Background(), entities.SupplierSupply3, []map[string]any{
			{"Product Description": "Ball Valve", "Price per Unit": "12.40", "Unit": "ea", "Date": "2024-01-02"},
			{"description": "ball valve", "price": 11, "date": "2023-01-02"},
			{"Description": "", "Price": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		e, ok := registry.Index(entities.SupplierSupply3).Lookup("BALL VALVE")
		require.True(t, ok)
		assert.Equal(t, 12.4, e.Price)

		suggestions, err := uc.Suggestions(entities.SupplierSupply3)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ball Valve"}, suggestions)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		uc := NewCatalogUseCase(catalog.NewRegistry(entities.DefaultSuppliers()), nil, nil, nil)
		_, err := uc.ReplaceCatalog(context.Background(), "supply9", nil)
		assert.ErrorIs(t, err, ErrInvalidSupplier)

		_, err = uc.Suggestions("supply9")
		assert.ErrorIs(t, err, ErrInvalidSupplier)
	})
}

func TestCatalogUseCase_Reload(t *testing.T) {
	t.Run("loads every supplier and keeps going on errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogSource(ctrl)

		reg := prometheus.NewRegistry()
		rec := metrics.NewRecorder(reg)
		registry := catalog.NewRegistry(entities.DefaultSuppliers())
		uc := NewCatalogUseCase(registry, source, nil, rec)

		source.EXPECT().LoadCatalog(gomock.Any(), entities.SupplierSupply1).
			Return([]entities.CatalogRecord{{Description: "Pipe", UnitPrice: 7}, {Description: "Cap", UnitPrice: 1}}, nil)
		source.EXPECT().LoadCatalog(gomock.Any(), entities.SupplierSupply2).
			Return(nil, errors.New("missing file"))
		source.EXPECT().LoadCatalog(gomock.Any(), entities.SupplierSupply3).Return(nil, nil)
		source.EXPECT().LoadCatalog(gomock.Any(), entities.SupplierSupply4).
			Return([]entities.CatalogRecord{{Description: "Tee", UnitPrice: 2}}, nil)

		err := uc.Reload(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supply2")
		assert.Contains(t, err.Error(), "missing file")

		assert.Equal(t, 2, registry.Index(entities.SupplierSupply1).Len())
		assert.Equal(t, 0, registry.Index(entities.SupplierSupply2).Len())
		assert.Equal(t, 1, registry.Index(entities.SupplierSupply4).Len())

		assert.Len(t, uc.Suppliers(), 4)
		mfs, err := reg.Gather()
		require.NoError(t, err)
		series := 0
		for _, mf := range mfs {
			if mf.GetName() == "catalog_index_entries" {
				series = len(mf.GetMetric())
			}
		}
		// supply2 failed to load and never reported a gauge
		assert.Equal(t, 3, series)
	})

	t.Run("no source", func(t *testing.T) {
		uc := NewCatalogUseCase(catalog.NewRegistry(entities.DefaultSuppliers()), nil, nil, nil)
		assert.NoError(t, uc.Reload(context.Background()))
	})
}
