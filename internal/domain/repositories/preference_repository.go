package repositories

import (
	"context"

	"github.com/google/uuid"
)

// PreferenceRepository stores small per-user settings.
type PreferenceRepository interface {
	// GetLanguage returns "" when the user never chose a language.
	GetLanguage(ctx context.Context, userID uuid.UUID) (string, error)
	SetLanguage(ctx context.Context, userID uuid.UUID, lang string) error
}
