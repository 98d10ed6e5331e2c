package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/infrastructure/models"
	"startup-nexus.backend/pkg/utils"
)

type InvestorRepository struct {
	db *gorm.DB
}

func NewInvestorRepository(db *gorm.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

func (r *InvestorRepository) Create(ctx context.Context, investor *entities.Investor) error {
	if investor.ID == uuid.Nil {
		investor.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(investor)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	investor.CreatedAt = m.CreatedAt
	investor.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *InvestorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Investor, error) {
	var m models.Investor
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *InvestorRepository) UpdateModeration(ctx context.Context, id uuid.UUID, m entities.Moderation) error {
	result := GetDB(ctx, r.db).Model(&models.Investor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       string(m.Status),
		"is_verified":  m.IsVerified,
		"moderated_at": m.ModeratedAt.Ptr(),
		"updated_at":   time.Now(),
	})
	return affected(result)
}

func (r *InvestorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Investor{}, "id = ?", id))
}

func (r *InvestorRepository) List(ctx context.Context, status entities.ModerationStatus, search string) ([]*entities.Investor, error) {
	query := GetDB(ctx, r.db).Model(&models.Investor{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var ms []models.Investor
	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Investor, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *InvestorRepository) CountByStatus(ctx context.Context) (map[entities.ModerationStatus]int64, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&models.Investor{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[entities.ModerationStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.ModerationStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *InvestorRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := GetDB(ctx, r.db).Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Investor{})
	return result.RowsAffected, result.Error
}

func (r *InvestorRepository) toModel(e *entities.Investor) *models.Investor {
	return &models.Investor{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Website:     e.Website.Ptr(),
		Stages:      e.Stages,
		Verticals:   e.Verticals,
		CheckSize:   e.CheckSize,
		Description: e.Description,
		Status:      string(e.Status),
		IsVerified:  e.IsVerified,
		ModeratedAt: e.ModeratedAt.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *InvestorRepository) toEntity(m *models.Investor) *entities.Investor {
	stages := m.Stages
	if stages == nil {
		stages = []string{}
	}
	verticals := m.Verticals
	if verticals == nil {
		verticals = []string{}
	}
	return &entities.Investor{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Website:     null.StringFromPtr(m.Website),
		Stages:      stages,
		Verticals:   verticals,
		CheckSize:   m.CheckSize,
		Description: m.Description,
		Moderation: entities.Moderation{
			Status:      entities.ModerationStatus(m.Status),
			IsVerified:  m.IsVerified,
			ModeratedAt: null.TimeFromPtr(m.ModeratedAt),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
