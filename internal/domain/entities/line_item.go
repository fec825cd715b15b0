package entities

// LineItemOrigin tells whether a row came from a saved list or was typed in.
//
// Predetermined rows follow the selected supplier; manual rows keep the code
// they were created with.
type LineItemOrigin string

const (
	LineItemOriginPredetermined LineItemOrigin = "predetermined"
	LineItemOriginManual        LineItemOrigin = "manual"
)

// LineItem is one row of a material list.
//
// Total is derived from Quantity and LastPrice and is recomputed by the
// material list on every change.
type LineItem struct {
	Quantity    float64        `json:"quantity"`
	Description string         `json:"description"`
	SupplyCode  string         `json:"supply_code"`
	Unit        string         `json:"unit"`
	LastPrice   float64        `json:"last_price"`
	Total       float64        `json:"total"`
	Origin      LineItemOrigin `json:"origin"`
}

// SnapshotItem is the serialized row shared by PDF export and template save.
type SnapshotItem struct {
	Description string  `json:"description"`
	Supply      string  `json:"supply"`
	Unit        string  `json:"unit"`
	LastPrice   float64 `json:"last_price"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}
