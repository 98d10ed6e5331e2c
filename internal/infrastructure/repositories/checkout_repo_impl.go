package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/infrastructure/models"
	"startup-nexus.backend/pkg/utils"
)

type CheckoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

func (r *CheckoutRepository) Create(ctx context.Context, checkout *entities.Checkout) error {
	if checkout.ID == uuid.Nil {
		checkout.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(checkout)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	checkout.CreatedAt = m.CreatedAt
	checkout.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CheckoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Checkout, error) {
	var m models.Checkout
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// GetDue returns processing checkouts whose settle time has passed, oldest first.
func (r *CheckoutRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]*entities.Checkout, error) {
	var ms []models.Checkout
	query := GetDB(ctx, r.db).
		Where("status = ? AND settle_at <= ?", string(entities.CheckoutProcessing), now).
		Order("settle_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Checkout, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// MarkSucceeded only transitions checkouts that are still processing.
func (r *CheckoutRepository) MarkSucceeded(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.finish(ctx, id, entities.CheckoutSucceeded, at)
}

// MarkCanceled only transitions checkouts that are still processing.
func (r *CheckoutRepository) MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.finish(ctx, id, entities.CheckoutCanceled, at)
}

func (r *CheckoutRepository) finish(ctx context.Context, id uuid.UUID, status entities.CheckoutStatus, at time.Time) error {
	result := GetDB(ctx, r.db).Model(&models.Checkout{}).
		Where("id = ? AND status = ?", id, string(entities.CheckoutProcessing)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"settled_at": at,
			"updated_at": time.Now(),
		})
	return affected(result)
}

func (r *CheckoutRepository) toModel(e *entities.Checkout) *models.Checkout {
	return &models.Checkout{
		ID:          e.ID,
		UserID:      e.UserID,
		Plan:        string(e.Plan),
		JobID:       e.JobID.Ptr(),
		AmountCents: e.AmountCents,
		Currency:    e.Currency,
		Status:      string(e.Status),
		SettleAt:    e.SettleAt,
		SettledAt:   e.SettledAt.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *CheckoutRepository) toEntity(m *models.Checkout) *entities.Checkout {
	return &entities.Checkout{
		ID:          m.ID,
		UserID:      m.UserID,
		Plan:        entities.CheckoutPlan(m.Plan),
		JobID:       null.StringFromPtr(m.JobID),
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Status:      entities.CheckoutStatus(m.Status),
		SettleAt:    m.SettleAt,
		SettledAt:   null.TimeFromPtr(m.SettledAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
