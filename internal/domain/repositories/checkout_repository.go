package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// CheckoutRepository defines simulated checkout data operations
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entities.Checkout) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Checkout, error)
	GetDue(ctx context.Context, now time.Time, limit int) ([]*entities.Checkout, error)
	MarkSucceeded(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error
}
