package repositories

import (
	"context"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// UserRepository defines ecosystem user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.UserFilter) ([]*entities.User, error)
	Count(ctx context.Context, filter entities.UserFilter) (int64, error)
	// DeleteAllExcept removes every user whose email is not in keep.
	DeleteAllExcept(ctx context.Context, keep ...string) (int64, error)
}
