package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/infrastructure/models"
	"startup-nexus.backend/pkg/utils"
)

type StartupRepository struct {
	db *gorm.DB
}

func NewStartupRepository(db *gorm.DB) *StartupRepository {
	return &StartupRepository{db: db}
}

// Upsert keys on owner_id. The stored row is read back so profile carries
// the persisted ID and timestamps.
func (r *StartupRepository) Upsert(ctx context.Context, profile *entities.StartupProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(profile)
	m.UpdatedAt = time.Now()
	err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "logo", "slogan", "about", "industry", "website", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return mapError(err)
	}

	stored, err := r.GetByOwner(ctx, profile.OwnerID)
	if err != nil {
		return err
	}
	*profile = *stored
	return nil
}

func (r *StartupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.StartupProfile, error) {
	var m models.StartupProfile
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *StartupRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.StartupProfile, error) {
	var m models.StartupProfile
	if err := GetDB(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *StartupRepository) List(ctx context.Context, industry, search string) ([]*entities.StartupProfile, error) {
	query := GetDB(ctx, r.db).Model(&models.StartupProfile{})
	if s := strings.TrimSpace(industry); s != "" {
		query = query.Where("LOWER(industry) = ?", strings.ToLower(s))
	}
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slogan) LIKE ?", term, term)
	}

	var ms []models.StartupProfile
	if err := query.Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.StartupProfile, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *StartupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.StartupProfile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StartupRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StartupProfile{})
	return result.RowsAffected, result.Error
}

func (r *StartupRepository) toModel(e *entities.StartupProfile) *models.StartupProfile {
	return &models.StartupProfile{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Name:      e.Name,
		Logo:      e.Logo.Ptr(),
		Slogan:    e.Slogan,
		About:     e.About,
		Industry:  e.Industry,
		Website:   e.Website.Ptr(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *StartupRepository) toEntity(m *models.StartupProfile) *entities.StartupProfile {
	return &entities.StartupProfile{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Logo:      null.StringFromPtr(m.Logo),
		Slogan:    m.Slogan,
		About:     m.About,
		Industry:  m.Industry,
		Website:   null.StringFromPtr(m.Website),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
