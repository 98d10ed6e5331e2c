package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// StartupRepository defines public startup profile data operations
type StartupRepository interface {
	// Upsert creates or replaces the profile owned by profile.OwnerID.
	Upsert(ctx context.Context, profile *entities.StartupProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.StartupProfile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.StartupProfile, error)
	List(ctx context.Context, industry, search string) ([]*entities.StartupProfile, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
