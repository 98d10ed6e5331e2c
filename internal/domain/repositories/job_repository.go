package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/pkg/utils"
)

// JobRepository defines job listing data operations
type JobRepository interface {
	Create(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Job, error)
	Update(ctx context.Context, job *entities.Job) error
	UpdateModeration(ctx context.Context, id uuid.UUID, m entities.Moderation) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns jobs featured first, then newest first.
	List(ctx context.Context, filter entities.JobFilter, pagination utils.PaginationParams) ([]*entities.Job, int64, error)
	CountByStatus(ctx context.Context) (map[entities.ModerationStatus]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
