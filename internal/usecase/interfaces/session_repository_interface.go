package interfaces

import (
	"context"

	"plumbing_estimator/internal/domain/entities"
)

// ISessionRepository persists material list sessions between UI events.
//
// GetByID returns a zero session (ID == "") when the id is unknown or expired.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.MaterialListSession) error
	GetByID(ctx context.Context, id string) (entities.MaterialListSession, error)
	Delete(ctx context.Context, id string) error
}
