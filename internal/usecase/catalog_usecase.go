package usecase

import (
	"context"
	"errors"
	"fmt"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"plumbing_estimator/pkg/logger"
	"plumbing_estimator/pkg/metrics"
)

// ICatalogUseCase exposes the supplier catalogs behind autofill.
type ICatalogUseCase interface {
	Suppliers() []entities.Supplier
	Suggestions(supplier entities.SupplierID) ([]string, error)
	ReplaceCatalog(ctx context.Context, supplier entities.SupplierID, rows []map[string]any) (int, error)
	Reload(ctx context.Context) error
}

type CatalogUseCase struct {
	registry *catalog.Registry
	source   interfaces.ICatalogSource
	log      *logger.Logger
	metrics  *metrics.Recorder
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(registry *catalog.Registry, source interfaces.ICatalogSource, log *logger.Logger, rec *metrics.Recorder) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{registry: registry, source: source, log: log, metrics: rec}
}

func (u *CatalogUseCase) Suppliers() []entities.Supplier {
	return u.registry.Suppliers()
}

func (u *CatalogUseCase) Suggestions(supplier entities.SupplierID) ([]string, error) {
	if _, ok := u.registry.Supplier(supplier); !ok {
		return nil, ErrInvalidSupplier
	}
	return u.registry.Index(supplier).Suggestions(), nil
}

// ReplaceCatalog swaps a supplier's catalog for rows given with their
// original column names. Rows without a description are dropped.
func (u *CatalogUseCase) ReplaceCatalog(ctx context.Context, supplier entities.SupplierID, rows []map[string]any) (int, error) {
	return u.swap(ctx, supplier, catalog.RecordsFromRaw(rows))
}

// Reload reads every supplier's catalog from the source. A supplier whose
// catalog cannot be read keeps an empty index; the errors are joined.
func (u *CatalogUseCase) Reload(ctx context.Context) error {
	if u.source == nil {
		return nil
	}
	var errs []error
	for _, s := range u.registry.Suppliers() {
		records, err := u.source.LoadCatalog(ctx, s.ID)
		if err != nil {
			u.log.Warn(u.log.WithFields(ctx, map[string]any{
				"supplier": string(s.ID),
				"error":    err.Error(),
			}), "[catalog][usecase] catalog not loaded")
			errs = append(errs, fmt.Errorf("%s: %w", s.ID, err))
			continue
		}
		if _, err := u.swap(ctx, s.ID, records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (u *CatalogUseCase) swap(ctx context.Context, supplier entities.SupplierID, records []entities.CatalogRecord) (int, error) {
	n, err := u.registry.Swap(supplier, records)
	if errors.Is(err, catalog.ErrUnknownSupplier) {
		return 0, ErrInvalidSupplier
	}
	if err != nil {
		return 0, err
	}
	u.metrics.SetCatalogEntries(string(supplier), n)
	u.log.Info(u.log.WithFields(ctx, map[string]any{
		"supplier": string(supplier),
		"records":  len(records),
		"entries":  n,
	}), "[catalog][usecase] catalog swapped")
	return n, nil
}
