package interfaces

import (
	"context"

	"plumbing_estimator/internal/domain/entities"
)

// IDocumentGateway renders a material list into a printable document (PDF).
type IDocumentGateway interface {
	RenderMaterialList(ctx context.Context, req entities.ExportRequest) (entities.Document, error)
}
