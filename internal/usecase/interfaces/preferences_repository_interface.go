package interfaces

import (
	"context"

	"plumbing_estimator/internal/domain/entities"
)

// IPreferencesRepository abstracts DynamoDB persistence for client preferences.
//
// Get returns zero Preferences (ClientID == "") when nothing was stored yet.
type IPreferencesRepository interface {
	Get(ctx context.Context, clientID string) (entities.Preferences, error)
	Save(ctx context.Context, p entities.Preferences) error
}
