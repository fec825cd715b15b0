package entities

import "time"

// MaterialListSession is the editing session behind one material list page.
//
// Storage model (Redis):
//   - key: matlist:session:{id}, JSON value, sliding TTL
//
// Items keep their order; the position in the slice is the row order.
type MaterialListSession struct {
	ID           string      `json:"id"`
	ClientID     string      `json:"client_id,omitempty"`
	TemplateName string      `json:"template_name,omitempty"`
	Supplier     SupplierID  `json:"supplier"`
	Items        []LineItem  `json:"items"`
	ProjectInfo  ProjectInfo `json:"project_info"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
