package interfaces

import (
	"context"

	"plumbing_estimator/internal/domain/entities"
)

// ITemplateGateway stores a named material list on the template service.
type ITemplateGateway interface {
	SaveTemplate(ctx context.Context, req entities.TemplateSaveRequest) error
}
