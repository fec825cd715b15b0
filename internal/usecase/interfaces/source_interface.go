package interfaces

import (
	"context"
	"errors"

	"plumbing_estimator/internal/domain/entities"
)

// ErrProductListNotFound is returned by IProductListSource for unknown names.
var ErrProductListNotFound = errors.New("product list not found")

// ICatalogSource loads a supplier's price catalog from wherever it is kept.
type ICatalogSource interface {
	LoadCatalog(ctx context.Context, supplier entities.SupplierID) ([]entities.CatalogRecord, error)
}

// IProductListSource loads a predetermined product list by name. Rows are
// returned with their original column names.
type IProductListSource interface {
	LoadProductList(ctx context.Context, name string) ([]map[string]any, error)
}
