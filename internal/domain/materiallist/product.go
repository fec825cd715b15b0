package materiallist

import (
	"strings"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
)

var (
	productDescriptionKeys = []string{"Product Description", "description", "Description"}
	productQuantityKeys    = []string{"Quantity", "quantity"}
	productSupplyKeys      = []string{"Supply", "supply"}
	productUnitKeys        = []string{"Unit", "unit"}
	productPriceKeys       = []string{"Last Price", "last_price", "Price per Unit"}
)

// ProductFromRaw maps one entry of a predetermined product list into a row.
// Rows without a supply column wear defaultSupplyCode.
func ProductFromRaw(raw map[string]any, defaultSupplyCode string) entities.LineItem {
	supply := strings.TrimSpace(catalog.StringField(raw, productSupplyKeys...))
	if supply == "" {
		supply = defaultSupplyCode
	}
	qty := Coerce(catalog.Number(catalog.Field(raw, productQuantityKeys...)))
	price := Coerce(catalog.Number(catalog.Field(raw, productPriceKeys...)))
	return entities.LineItem{
		Quantity:    qty,
		Description: strings.TrimSpace(catalog.StringField(raw, productDescriptionKeys...)),
		SupplyCode:  supply,
		Unit:        strings.TrimSpace(catalog.StringField(raw, productUnitKeys...)),
		LastPrice:   price,
		Total:       RowTotal(qty, price),
		Origin:      entities.LineItemOriginPredetermined,
	}
}

// ProductsFromRaw converts a whole predetermined list.
func ProductsFromRaw(rows []map[string]any, defaultSupplyCode string) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProductFromRaw(row, defaultSupplyCode))
	}
	return out
}
