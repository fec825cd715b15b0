package entities

// SupplierID identifies one of the vendor catalogs a material list can be
// priced against.
type SupplierID string

const (
	SupplierSupply1 SupplierID = "supply1"
	SupplierSupply2 SupplierID = "supply2"
	SupplierSupply3 SupplierID = "supply3"
	SupplierSupply4 SupplierID = "supply4"
)

// DefaultSupplierID is used when neither the request nor the stored
// preferences name a supplier.
const DefaultSupplierID = SupplierSupply1

// Supplier pairs an identifier with the short code printed in the "Supply"
// column of a line item.
type Supplier struct {
	ID   SupplierID `json:"id"`
	Code string     `json:"code"`
	Name string     `json:"name"`
}

// DefaultSuppliers returns the built-in supplier set.
func DefaultSuppliers() []Supplier {
	return []Supplier{
		{ID: SupplierSupply1, Code: "BPS", Name: "Supply 1"},
		{ID: SupplierSupply2, Code: "S2", Name: "Supply 2"},
		{ID: SupplierSupply3, Code: "LPS", Name: "Lion Plumbing Supply"},
		{ID: SupplierSupply4, Code: "BOND", Name: "Bond Plumbing Supply"},
	}
}

// SuggestionListID is the datalist id a view uses for the supplier's
// description suggestions.
func (s Supplier) SuggestionListID() string {
	return string(s.ID) + "List"
}
