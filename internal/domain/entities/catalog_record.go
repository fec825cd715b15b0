package entities

import "time"

// CatalogRecord is one historical price observation for a product.
//
// Several records may share a description; autofill only uses the most
// recent one.
type CatalogRecord struct {
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UnitPrice   float64   `json:"unit_price"`
	Unit        string    `json:"unit"`
}
