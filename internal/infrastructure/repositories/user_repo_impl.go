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

// UserRepository implements ecosystem user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	user.Email = utils.NormalizeEmail(user.Email)
	m := r.toModel(user)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", utils.NormalizeEmail(email)).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":          user.Name,
		"role":          string(user.Role),
		"status":        string(user.Status),
		"password_hash": user.PasswordHash,
		"last_login_at": user.LastLoginAt.Ptr(),
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	return affected(result)
}

// UpdateStatus sets Active or Banned
func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	return affected(result)
}

// Delete removes a user permanently
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(GetDB(ctx, r.db).Delete(&models.User{}, "id = ?", id))
}

// List lists users matching the filter, newest first
func (r *UserRepository) List(ctx context.Context, filter entities.UserFilter) ([]*entities.User, error) {
	var ms []models.User
	if err := r.filtered(ctx, filter).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, nil
}

// Count counts users matching the filter
func (r *UserRepository) Count(ctx context.Context, filter entities.UserFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAllExcept removes every user whose email is not listed in keep
func (r *UserRepository) DeleteAllExcept(ctx context.Context, keep ...string) (int64, error) {
	query := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true})
	normalized := make([]string, 0, len(keep))
	for _, e := range keep {
		if e = utils.NormalizeEmail(e); e != "" {
			normalized = append(normalized, e)
		}
	}
	if len(normalized) > 0 {
		query = query.Where("email NOT IN ?", normalized)
	}
	result := query.Delete(&models.User{})
	return result.RowsAffected, result.Error
}

func (r *UserRepository) filtered(ctx context.Context, filter entities.UserFilter) *gorm.DB {
	query := GetDB(ctx, r.db).Model(&models.User{})
	if strings.TrimSpace(filter.Search) != "" {
		term := likeTerm(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", string(filter.Role))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	return query
}

func (r *UserRepository) toModel(e *entities.User) *models.User {
	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		Status:       string(e.Status),
		LastLoginAt:  e.LastLoginAt.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Status:       entities.UserStatus(m.Status),
		LastLoginAt:  null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
