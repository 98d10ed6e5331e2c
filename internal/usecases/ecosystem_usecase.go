package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/metrics"
	"startup-nexus.backend/pkg/utils"
)

// EcosystemRepos groups the collections the admin can purge.
type EcosystemRepos struct {
	Users        repositories.UserRepository
	Jobs         repositories.JobRepository
	Investors    repositories.InvestorRepository
	Applications repositories.ApplicationRepository
	Startups     repositories.StartupRepository
}

// MasterAdmin identifies the seeded account that can never be banned or removed.
type MasterAdmin struct {
	Email string
	Name  string
}

// EcosystemUsecase covers admin user management and bulk maintenance.
type EcosystemUsecase struct {
	repos   EcosystemRepos
	uow     repositories.UnitOfWork
	screen  *EmailScreen
	master  MasterAdmin
	metrics *metrics.Registry
}

func NewEcosystemUsecase(
	repos EcosystemRepos,
	uow repositories.UnitOfWork,
	screen *EmailScreen,
	master MasterAdmin,
	m *metrics.Registry,
) *EcosystemUsecase {
	master.Email = utils.NormalizeEmail(master.Email)
	if strings.TrimSpace(master.Name) == "" {
		master.Name = "Nexus Admin"
	}
	return &EcosystemUsecase{repos: repos, uow: uow, screen: screen, master: master, metrics: m}
}

// EnsureMasterAdmin creates the master admin or repairs its role and status.
func (u *EcosystemUsecase) EnsureMasterAdmin(ctx context.Context) (*entities.User, error) {
	if u.master.Email == "" {
		return nil, domainerrors.BadRequest("master admin email is not configured")
	}

	user, err := u.repos.Users.GetByEmail(ctx, u.master.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		if user.Role == entities.UserRoleAdmin && user.Status == entities.UserStatusActive {
			return user, nil
		}
		user.Role = entities.UserRoleAdmin
		user.Status = entities.UserStatusActive
		if err := u.repos.Users.Update(ctx, user); err != nil {
			return nil, err
		}
		logger.Warn(ctx, "Master admin repaired", zap.String("email", user.Email))
		return user, nil
	}

	user = &entities.User{
		Email:  u.master.Email,
		Name:   u.master.Name,
		Role:   entities.UserRoleAdmin,
		Status: entities.UserStatusActive,
	}
	if err := u.repos.Users.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.repos.Users.GetByEmail(ctx, u.master.Email)
		}
		return nil, err
	}
	logger.Info(ctx, "Master admin seeded", zap.String("email", user.Email))
	return user, nil
}

// ListUsers returns accounts matching search and role.
func (u *EcosystemUsecase) ListUsers(ctx context.Context, search, role string) ([]*entities.User, error) {
	filter := entities.UserFilter{Search: search}
	if strings.TrimSpace(role) != "" {
		r, ok := entities.ParseUserRole(role)
		if !ok {
			return nil, domainerrors.BadRequest("unknown role")
		}
		filter.Role = r
	}
	return u.repos.Users.List(ctx, filter)
}

// ToggleBan flips Active and Banned.
func (u *EcosystemUsecase) ToggleBan(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.user(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsMasterAdmin(user.Email) {
		return nil, domainerrors.ErrProtectedAccount
	}

	next := entities.UserStatusBanned
	if user.IsBanned() {
		next = entities.UserStatusActive
	}
	if err := u.repos.Users.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	user.Status = next
	logger.Info(ctx, "User ban toggled", zap.String("user_id", id.String()), zap.String("status", string(next)))
	return user, nil
}

// DeleteUser removes any account except the master admin.
func (u *EcosystemUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := u.user(ctx, id)
	if err != nil {
		return err
	}
	if u.IsMasterAdmin(user.Email) {
		return domainerrors.ErrProtectedAccount
	}
	if err := u.repos.Users.Delete(ctx, id); err != nil {
		return err
	}
	u.metrics.UsersRemoved("admin", 1)
	return nil
}

// CleanupFakeUsers removes accounts on disposable domains or with long digit
// runs in the local part. dryRun only reports what would be removed.
func (u *EcosystemUsecase) CleanupFakeUsers(ctx context.Context, dryRun bool) (*entities.CleanupResult, error) {
	users, err := u.repos.Users.List(ctx, entities.UserFilter{})
	if err != nil {
		return nil, err
	}

	type candidate struct {
		user   *entities.User
		reason string
	}
	var doomed []candidate
	for _, user := range users {
		if u.IsMasterAdmin(user.Email) {
			continue
		}
		if reason, fake := u.screen.FakeReason(user.Email); fake {
			doomed = append(doomed, candidate{user: user, reason: reason})
		}
	}

	result := &entities.CleanupResult{DryRun: dryRun, Removed: make([]string, 0, len(doomed))}
	for _, c := range doomed {
		result.Removed = append(result.Removed, c.user.Email)
	}
	if dryRun || len(doomed) == 0 {
		return result, nil
	}

	byReason := map[string]int{}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		for _, c := range doomed {
			if err := u.repos.Users.Delete(txCtx, c.user.ID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return fmt.Errorf("delete %s: %w", c.user.Email, err)
			}
			byReason[c.reason]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for reason, n := range byReason {
		u.metrics.UsersRemoved(reason, n)
	}
	logger.Info(ctx, "Fake users cleaned up", zap.Int("removed", len(result.Removed)))
	return result, nil
}

// Purge empties one collection. Purging users keeps the master admin and
// purging jobs also drops their applications.
func (u *EcosystemUsecase) Purge(ctx context.Context, collection string) (int64, error) {
	var removed int64
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		switch strings.ToLower(strings.TrimSpace(collection)) {
		case CollectionJobs:
			if _, err = u.repos.Applications.DeleteAll(txCtx); err != nil {
				return err
			}
			removed, err = u.repos.Jobs.DeleteAll(txCtx)
		case CollectionInvestors:
			removed, err = u.repos.Investors.DeleteAll(txCtx)
		case CollectionApplications:
			removed, err = u.repos.Applications.DeleteAll(txCtx)
		case CollectionStartups:
			removed, err = u.repos.Startups.DeleteAll(txCtx)
		case CollectionUsers:
			removed, err = u.repos.Users.DeleteAllExcept(txCtx, u.master.Email)
			if err == nil {
				u.metrics.UsersRemoved("purge", int(removed))
			}
		default:
			return domainerrors.BadRequest("unknown collection")
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	logger.Warn(ctx, "Collection purged", zap.String("collection", collection), zap.Int64("removed", removed))
	return removed, nil
}

// IsMasterAdmin reports whether email belongs to the protected account.
func (u *EcosystemUsecase) IsMasterAdmin(email string) bool {
	return u.master.Email != "" && utils.NormalizeEmail(email) == u.master.Email
}

func (u *EcosystemUsecase) user(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}
