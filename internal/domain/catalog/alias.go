package catalog

import (
	"fmt"
	"strings"

	"plumbing_estimator/internal/domain/entities"
)

// Column aliases observed in supplier sheets and server payloads. The first
// alias holding a non-empty value wins.
var (
	descriptionKeys = []string{"Description", "Product Description", "description"}
	priceKeys       = []string{"Price per Unit", "price per unit", "Price", "price", "last_price"}
	unitKeys        = []string{"Unit", "unit"}
	dateKeys        = []string{"Date", "date"}
)

// IsDateColumn reports whether header names the record date column.
func IsDateColumn(header string) bool {
	for _, k := range dateKeys {
		if header == k {
			return true
		}
	}
	return false
}

// RecordFromRaw maps one loosely keyed row into a CatalogRecord. It reports
// false when the row has no description.
func RecordFromRaw(raw map[string]any) (entities.CatalogRecord, bool) {
	description := strings.TrimSpace(StringField(raw, descriptionKeys...))
	if description == "" {
		return entities.CatalogRecord{}, false
	}
	return entities.CatalogRecord{
		Description: description,
		Date:        Date(Field(raw, dateKeys...)),
		UnitPrice:   Number(Field(raw, priceKeys...)),
		Unit:        strings.TrimSpace(StringField(raw, unitKeys...)),
	}, true
}

// RecordsFromRaw converts a whole dataset, dropping rows without a description.
func RecordsFromRaw(rows []map[string]any) []entities.CatalogRecord {
	out := make([]entities.CatalogRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := RecordFromRaw(row); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Field returns the first non-empty value stored under any of keys.
func Field(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// StringField is Field rendered as a string.
func StringField(raw map[string]any, keys ...string) string {
	switch v := Field(raw, keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
