package materiallist

import (
	"math"

	"plumbing_estimator/internal/domain/entities"
)

// Direction is a one-step reorder.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionUp:
		return DirectionUp, true
	case DirectionDown:
		return DirectionDown, true
	}
	return "", false
}

// Patch carries the fields to merge into a row; nil fields are left alone.
type Patch struct {
	Quantity    *float64
	Description *string
	SupplyCode  *string
	Unit        *string
	LastPrice   *float64
}

func (p Patch) IsEmpty() bool {
	return p.Quantity == nil && p.Description == nil && p.SupplyCode == nil && p.Unit == nil && p.LastPrice == nil
}

// List is the ordered set of rows of one material list. Every mutation keeps
// the row totals in step with quantity and price.
type List struct {
	items []entities.LineItem
}

// New adopts a copy of items, coercing numerics and recomputing totals.
func New(items []entities.LineItem) *List {
	l := &List{items: make([]entities.LineItem, len(items))}
	for i, it := range items {
		if it.Origin == "" {
			it.Origin = entities.LineItemOriginManual
		}
		it.Quantity = Coerce(it.Quantity)
		it.LastPrice = Coerce(it.LastPrice)
		it.Total = RowTotal(it.Quantity, it.LastPrice)
		l.items[i] = it
	}
	return l
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the rows in order.
func (l *List) Items() []entities.LineItem {
	return append([]entities.LineItem(nil), l.items...)
}

// Insert appends a blank manual row wearing supplyCode and returns its index.
func (l *List) Insert(supplyCode string) int {
	l.items = append(l.items, entities.LineItem{
		SupplyCode: supplyCode,
		Origin:     entities.LineItemOriginManual,
	})
	return len(l.items) - 1
}

// Remove deletes the row at index. Out-of-range indexes are ignored.
func (l *List) Remove(index int) bool {
	if !l.inRange(index) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// Move swaps the row with its neighbour. Moving past either end is a no-op.
func (l *List) Move(index int, dir Direction) bool {
	if !l.inRange(index) {
		return false
	}
	target := index
	switch dir {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	}
	if target == index || !l.inRange(target) {
		return false
	}
	l.items[index], l.items[target] = l.items[target], l.items[index]
	return true
}

// Update merges p into the row at index and recomputes its total.
func (l *List) Update(index int, p Patch) bool {
	if !l.inRange(index) {
		return false
	}
	it := l.items[index]
	if p.Quantity != nil {
		it.Quantity = Coerce(*p.Quantity)
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.SupplyCode != nil {
		it.SupplyCode = *p.SupplyCode
	}
	if p.Unit != nil {
		it.Unit = *p.Unit
	}
	if p.LastPrice != nil {
		it.LastPrice = Coerce(*p.LastPrice)
	}
	it.Total = RowTotal(it.Quantity, it.LastPrice)
	l.items[index] = it
	return true
}

// Snapshot serializes the rows for export or save. Totals are recomputed
// rather than read from the rows.
func (l *List) Snapshot() []entities.SnapshotItem {
	out := make([]entities.SnapshotItem, len(l.items))
	for i, it := range l.items {
		out[i] = entities.SnapshotItem{
			Description: it.Description,
			Supply:      it.SupplyCode,
			Unit:        it.Unit,
			LastPrice:   it.LastPrice,
			Quantity:    it.Quantity,
			Total:       RowTotal(it.Quantity, it.LastPrice),
		}
	}
	return out
}

func (l *List) GrandTotal() float64 {
	return GrandTotal(l.items)
}

func (l *List) inRange(index int) bool {
	return index >= 0 && index < len(l.items)
}

// MaxAmount caps quantities and prices so row and list totals stay finite.
const MaxAmount = 1e12

// Coerce clamps a numeric field to a finite, non-negative value no larger
// than MaxAmount.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return math.Min(v, MaxAmount)
}
