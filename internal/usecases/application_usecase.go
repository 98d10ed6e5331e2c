package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/utils"
)

// ApplicationUsecase handles candidate applications to jobs.
type ApplicationUsecase struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationUsecase(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) *ApplicationUsecase {
	return &ApplicationUsecase{appRepo: appRepo, jobRepo: jobRepo}
}

// Apply submits an application to a visible job. actor is nil for anonymous visitors.
func (u *ApplicationUsecase) Apply(ctx context.Context, actor *Actor, jobID uuid.UUID, input *entities.ApplyInput) (*entities.Application, error) {
	job, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsPublic() {
		return nil, domainerrors.ErrJobNotPublic
	}

	cv := strings.TrimSpace(input.CVURL)
	if cv == "" {
		return nil, domainerrors.ErrCVRequired
	}

	app := &entities.Application{
		JobID:          jobID,
		CandidateName:  strings.TrimSpace(input.CandidateName),
		CandidateEmail: utils.NormalizeEmail(input.CandidateEmail),
		CVURL:          cv,
		CoverLetter:    optionalString(input.CoverLetter),
		Status:         entities.ApplicationApplied,
	}
	if actor != nil && actor.ID != uuid.Nil {
		app.CandidateID = null.StringFrom(actor.ID.String())
		if app.CandidateEmail == "" {
			app.CandidateEmail = utils.NormalizeEmail(actor.Email)
		}
	}
	if app.CandidateName == "" || app.CandidateEmail == "" {
		return nil, domainerrors.BadRequest("candidate name and email are required")
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("you already applied to this job")
		}
		return nil, err
	}
	return app, nil
}

// UpdateApplicationStatus moves a candidate through the pipeline.
func (u *ApplicationUsecase) UpdateApplicationStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (*entities.Application, error) {
	s, ok := entities.ParseApplicationStatus(status)
	if !ok {
		return nil, domainerrors.BadRequest("status must be Applied, Interviewing, Rejected or Hired")
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("application not found")
		}
		return nil, err
	}
	job, err := u.job(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !actor.canManage(job.OwnerID) {
		return nil, domainerrors.Forbidden("you can only manage applications to your own jobs")
	}

	if err := u.appRepo.UpdateStatus(ctx, id, s); err != nil {
		return nil, err
	}
	app.Status = s
	return app, nil
}

// ListJobApplications is visible to the job owner and admins.
func (u *ApplicationUsecase) ListJobApplications(ctx context.Context, actor Actor, jobID uuid.UUID) ([]*entities.Application, error) {
	job, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !actor.canManage(job.OwnerID) {
		return nil, domainerrors.Forbidden("you can only view applications to your own jobs")
	}
	return u.appRepo.ListByJob(ctx, jobID)
}

// ListStartupApplications returns every application to the actor's jobs.
func (u *ApplicationUsecase) ListStartupApplications(ctx context.Context, actor Actor) ([]*entities.Application, error) {
	return u.appRepo.ListByJobOwner(ctx, actor.ID)
}

// ListMyApplications matches on the candidate email, so applications sent
// before the account existed are included.
func (u *ApplicationUsecase) ListMyApplications(ctx context.Context, actor Actor) ([]*entities.Application, error) {
	return u.appRepo.ListByCandidateEmail(ctx, actor.Email)
}

func (u *ApplicationUsecase) job(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("job not found")
		}
		return nil, err
	}
	return job, nil
}
