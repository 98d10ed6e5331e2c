package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/metrics"
	"startup-nexus.backend/pkg/utils"
)

// JobUsecase manages job listings and their moderation.
type JobUsecase struct {
	jobRepo repositories.JobRepository
	appRepo repositories.ApplicationRepository
	uow     repositories.UnitOfWork
	metrics *metrics.Registry
	now     func() time.Time
}

func NewJobUsecase(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	uow repositories.UnitOfWork,
	m *metrics.Registry,
) *JobUsecase {
	return &JobUsecase{
		jobRepo: jobRepo,
		appRepo: appRepo,
		uow:     uow,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// AddJob submits a new listing for moderation.
func (u *JobUsecase) AddJob(ctx context.Context, actor Actor, input *entities.JobInput) (*entities.Job, error) {
	if actor.Role != entities.UserRoleStartup && !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only startups can post jobs")
	}
	job := &entities.Job{
		OwnerID:    actor.ID,
		Moderation: entities.NewModeration(),
	}
	if err := applyJobInput(job, input); err != nil {
		return nil, err
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob edits content only; status and verification are untouched.
func (u *JobUsecase) UpdateJob(ctx context.Context, actor Actor, id uuid.UUID, input *entities.JobInput) (*entities.Job, error) {
	job, err := u.manageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := applyJobInput(job, input); err != nil {
		return nil, err
	}
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job together with its applications.
func (u *JobUsecase) DeleteJob(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := u.manageable(ctx, actor, id); err != nil {
		return err
	}
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		removed, err := u.appRepo.DeleteByJob(txCtx, id)
		if err != nil {
			return err
		}
		if err := u.jobRepo.Delete(txCtx, id); err != nil {
			return err
		}
		logger.Info(ctx, "Job deleted", zap.String("job_id", id.String()), zap.Int64("applications_removed", removed))
		return nil
	})
}

// ModerateJob records an admin decision. Only Approved verifies the job.
func (u *JobUsecase) ModerateJob(ctx context.Context, id uuid.UUID, status string) (*entities.Job, error) {
	s, ok := entities.ParseModerationStatus(status)
	if !ok {
		return nil, domainerrors.BadRequest("status must be Pending, Approved or Rejected")
	}
	job, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Moderation.Apply(s, u.now())
	if err := u.jobRepo.UpdateModeration(ctx, id, job.Moderation); err != nil {
		return nil, err
	}
	u.metrics.ModerationDecision("job", string(s))
	return job, nil
}

// ListPublicJobs returns visible jobs, featured first then newest.
func (u *JobUsecase) ListPublicJobs(ctx context.Context, filter entities.JobFilter, p utils.PaginationParams) ([]*entities.Job, utils.PaginationMeta, error) {
	filter.PublicOnly = true
	filter.Status = ""
	filter.OwnerID = nil
	jobs, total, err := u.jobRepo.List(ctx, filter, p)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return jobs, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// GetPublicJob hides anything not approved and verified.
func (u *JobUsecase) GetPublicJob(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	job, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.IsPublic() {
		return nil, domainerrors.NotFound("job not found")
	}
	return job, nil
}

// ListOwnerJobs returns every job of the actor regardless of status.
func (u *JobUsecase) ListOwnerJobs(ctx context.Context, actor Actor) ([]*entities.Job, error) {
	owner := actor.ID
	jobs, _, err := u.jobRepo.List(ctx, entities.JobFilter{OwnerID: &owner}, utils.PaginationParams{})
	return jobs, err
}

// ListAllJobs is the admin view, optionally narrowed by status and search.
func (u *JobUsecase) ListAllJobs(ctx context.Context, status, search string, p utils.PaginationParams) ([]*entities.Job, utils.PaginationMeta, error) {
	filter := entities.JobFilter{Query: search}
	if status != "" {
		s, ok := entities.ParseModerationStatus(status)
		if !ok {
			return nil, utils.PaginationMeta{}, domainerrors.BadRequest("unknown status")
		}
		filter.Status = s
	}
	jobs, total, err := u.jobRepo.List(ctx, filter, p)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return jobs, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

func (u *JobUsecase) get(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *JobUsecase) manageable(ctx context.Context, actor Actor, id uuid.UUID) (*entities.Job, error) {
	job, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canManage(job.OwnerID) {
		return nil, domainerrors.Forbidden("you can only manage your own jobs")
	}
	return job, nil
}

func applyJobInput(job *entities.Job, input *entities.JobInput) error {
	job.Title = strings.TrimSpace(input.Title)
	job.Company = strings.TrimSpace(input.Company)
	job.Region = strings.TrimSpace(input.Region)
	job.Type = strings.TrimSpace(input.Type)
	job.SalaryRange = strings.TrimSpace(input.SalaryRange)
	job.Description = strings.TrimSpace(input.Description)
	job.ApplyURL = optionalString(input.ApplyURL)

	if job.Title == "" || job.Company == "" {
		return domainerrors.BadRequest("title and company are required")
	}
	return nil
}

func optionalString(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
