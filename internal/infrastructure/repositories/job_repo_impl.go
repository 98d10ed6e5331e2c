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

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *entities.Job) error {
	if job.ID == uuid.Nil {
		job.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(job)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	job.CreatedAt = m.CreatedAt
	job.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	var m models.Job
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// Update writes the editable content only; moderation has its own path.
func (r *JobRepository) Update(ctx context.Context, job *entities.Job) error {
	updates := map[string]interface{}{
		"title":        job.Title,
		"company":      job.Company,
		"region":       job.Region,
		"type":         job.Type,
		"salary_range": job.SalaryRange,
		"description":  job.Description,
		"apply_url":    job.ApplyURL.Ptr(),
		"updated_at":   time.Now(),
	}
	result := GetDB(ctx, r.db).Model(&models.Job{}).Where("id = ?", job.ID).Updates(updates)
	return affected(result)
}

func (r *JobRepository) UpdateModeration(ctx context.Context, id uuid.UUID, m entities.Moderation) error {
	result := GetDB(ctx, r.db).Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       string(m.Status),
		"is_verified":  m.IsVerified,
		"moderated_at": m.ModeratedAt.Ptr(),
		"updated_at":   time.Now(),
	})
	return affected(result)
}

func (r *JobRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := GetDB(ctx, r.db).Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_featured": featured,
		"updated_at":  time.Now(),
	})
	return affected(result)
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Job{}, "id = ?", id))
}

func (r *JobRepository) List(ctx context.Context, filter entities.JobFilter, pagination utils.PaginationParams) ([]*entities.Job, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Job{})
	if filter.PublicOnly {
		query = query.Where("status = ? AND is_verified = ?", string(entities.ModerationApproved), true)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if s := strings.TrimSpace(filter.Region); s != "" {
		query = query.Where("LOWER(region) = ?", strings.ToLower(s))
	}
	if s := strings.TrimSpace(filter.Type); s != "" {
		query = query.Where("LOWER(type) = ?", strings.ToLower(s))
	}
	if strings.TrimSpace(filter.Query) != "" {
		term := likeTerm(filter.Query)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("is_featured DESC, created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var ms []models.Job
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Job, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *JobRepository) CountByStatus(ctx context.Context) (map[entities.ModerationStatus]int64, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&models.Job{}).
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

// DeleteAll permanently empties the table.
func (r *JobRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := GetDB(ctx, r.db).Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Job{})
	return result.RowsAffected, result.Error
}

func (r *JobRepository) toModel(e *entities.Job) *models.Job {
	return &models.Job{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Company:     e.Company,
		Region:      e.Region,
		Type:        e.Type,
		SalaryRange: e.SalaryRange,
		Description: e.Description,
		ApplyURL:    e.ApplyURL.Ptr(),
		Status:      string(e.Status),
		IsVerified:  e.IsVerified,
		IsFeatured:  e.IsFeatured,
		ModeratedAt: e.ModeratedAt.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *JobRepository) toEntity(m *models.Job) *entities.Job {
	return &entities.Job{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Company:     m.Company,
		Region:      m.Region,
		Type:        m.Type,
		SalaryRange: m.SalaryRange,
		Description: m.Description,
		ApplyURL:    null.StringFromPtr(m.ApplyURL),
		IsFeatured:  m.IsFeatured,
		Moderation: entities.Moderation{
			Status:      entities.ModerationStatus(m.Status),
			IsVerified:  m.IsVerified,
			ModeratedAt: null.TimeFromPtr(m.ModeratedAt),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
