package request

// ReplaceCatalogRequest swaps a supplier catalog. Records keep the column
// names of the supplier sheet (Description, Price per Unit, Unit, Date, ...).
type ReplaceCatalogRequest struct {
	Records []map[string]any `json:"records" binding:"required"`
}
