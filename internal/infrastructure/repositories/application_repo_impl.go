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

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create returns ErrAlreadyExists when the candidate already applied to the job.
func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	if app.ID == uuid.Nil {
		app.ID = utils.GenerateUUIDv7()
	}
	app.CandidateEmail = utils.NormalizeEmail(app.CandidateEmail)
	m := r.toModel(app)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := GetDB(ctx, r.db).Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	return affected(result)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entities.Application, error) {
	return r.find(GetDB(ctx, r.db).Where("job_id = ?", jobID))
}

func (r *ApplicationRepository) ListByJobOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Application, error) {
	query := GetDB(ctx, r.db).
		Select("applications.*").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.owner_id = ? AND jobs.deleted_at IS NULL", ownerID)
	return r.find(query)
}

func (r *ApplicationRepository) ListByCandidateEmail(ctx context.Context, email string) ([]*entities.Application, error) {
	return r.find(GetDB(ctx, r.db).Where("candidate_email = ?", utils.NormalizeEmail(email)))
}

func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	result := GetDB(ctx, r.db).Where("job_id = ?", jobID).Delete(&models.Application{})
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Application{})
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepository) find(query *gorm.DB) ([]*entities.Application, error) {
	var ms []models.Application
	if err := query.Order("applications.created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ApplicationRepository) toModel(e *entities.Application) *models.Application {
	return &models.Application{
		ID:             e.ID,
		JobID:          e.JobID,
		CandidateID:    e.CandidateID.Ptr(),
		CandidateName:  e.CandidateName,
		CandidateEmail: e.CandidateEmail,
		CVURL:          e.CVURL,
		CoverLetter:    e.CoverLetter.Ptr(),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:             m.ID,
		JobID:          m.JobID,
		CandidateID:    null.StringFromPtr(m.CandidateID),
		CandidateName:  m.CandidateName,
		CandidateEmail: m.CandidateEmail,
		CVURL:          m.CVURL,
		CoverLetter:    null.StringFromPtr(m.CoverLetter),
		Status:         entities.ApplicationStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
