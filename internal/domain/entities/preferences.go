package entities

import "time"

// Preferences is the per-client memory of the last supplier and template
// used, so a reload resumes in the same context.
//
// Storage model (DynamoDB):
//   - PK: client_id
type Preferences struct {
	ClientID         string     `json:"client_id"`
	SelectedSupplier SupplierID `json:"selected_supplier,omitempty"`
	SelectedTemplate string     `json:"selected_template,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
