package materiallist

import (
	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
)

// Resolve looks description up in the supplier's index. On a hit the patch
// sets supply code, unit and price; on a miss it only carries the description
// so previously filled values survive.
func Resolve(description string, supplier entities.Supplier, index catalog.Index, currentUnit string) (Patch, bool) {
	desc := description
	entry, ok := index.Lookup(description)
	if !ok {
		return Patch{Description: &desc}, false
	}
	code := supplier.Code
	unit := entry.Unit
	if unit == "" {
		unit = currentUnit
	}
	price := entry.Price
	return Patch{
		Description: &desc,
		SupplyCode:  &code,
		Unit:        &unit,
		LastPrice:   &price,
	}, true
}

// ApplyDescription handles a description edit on one row. ok is false when
// index is out of range.
func (l *List) ApplyDescription(index int, description string, supplier entities.Supplier, ix catalog.Index) (hit bool, ok bool) {
	if !l.inRange(index) {
		return false, false
	}
	patch, hit := Resolve(description, supplier, ix, l.items[index].Unit)
	l.Update(index, patch)
	return hit, true
}

// RebindSupplier re-resolves every predetermined row against a newly selected
// supplier. Those rows always take the supplier's code; unit and price change
// only on a hit. Manual rows are left as they are. It returns the hit count.
func (l *List) RebindSupplier(supplier entities.Supplier, ix catalog.Index) int {
	hits := 0
	code := supplier.Code
	for i, it := range l.items {
		if it.Origin != entities.LineItemOriginPredetermined {
			continue
		}
		patch, hit := Resolve(it.Description, supplier, ix, it.Unit)
		if hit {
			hits++
		}
		patch.SupplyCode = &code
		l.Update(i, patch)
	}
	return hits
}
