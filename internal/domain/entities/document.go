package entities

// ExportRequest is handed to the document generator.
type ExportRequest struct {
	Items        []SnapshotItem
	IncludePrice bool
	ProjectInfo  ProjectInfo
}

// Document is a rendered export returned by the document generator.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// TemplateSaveRequest is handed to the template store.
type TemplateSaveRequest struct {
	TemplateName string
	Items        []SnapshotItem
	// ProjectInfo is omitted from the request when nil.
	ProjectInfo *ProjectInfo
}
