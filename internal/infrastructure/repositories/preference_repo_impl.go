package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/pkg/redis"
)

const languageKeyPrefix = "pref:lang:"

// PreferenceRepository keeps per-user settings in Redis without expiry.
type PreferenceRepository struct{}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

func (r *PreferenceRepository) GetLanguage(ctx context.Context, userID uuid.UUID) (string, error) {
	lang, err := redis.Get(ctx, languageKeyPrefix+userID.String())
	if redis.IsNil(err) {
		return "", nil
	}
	return lang, err
}

func (r *PreferenceRepository) SetLanguage(ctx context.Context, userID uuid.UUID, lang string) error {
	return redis.Set(ctx, languageKeyPrefix+userID.String(), lang, 0)
}
