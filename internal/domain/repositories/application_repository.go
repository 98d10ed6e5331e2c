package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// ApplicationRepository defines job application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entities.Application, error)
	ListByJobOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Application, error)
	ListByCandidateEmail(ctx context.Context, email string) ([]*entities.Application, error)
	DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
