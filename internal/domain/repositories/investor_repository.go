package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// InvestorRepository defines investor directory data operations
type InvestorRepository interface {
	Create(ctx context.Context, investor *entities.Investor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Investor, error)
	UpdateModeration(ctx context.Context, id uuid.UUID, m entities.Moderation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns newest first. Empty status means any status.
	List(ctx context.Context, status entities.ModerationStatus, search string) ([]*entities.Investor, error)
	CountByStatus(ctx context.Context) (map[entities.ModerationStatus]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
