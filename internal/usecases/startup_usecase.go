package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
)

// StartupUsecase maintains the public startup directory.
type StartupUsecase struct {
	repo repositories.StartupRepository
}

func NewStartupUsecase(repo repositories.StartupRepository) *StartupUsecase {
	return &StartupUsecase{repo: repo}
}

// SaveBrandProfile upserts the actor's public profile.
func (u *StartupUsecase) SaveBrandProfile(ctx context.Context, actor Actor, input *entities.BrandProfileInput) (*entities.StartupProfile, error) {
	if actor.Role != entities.UserRoleStartup {
		return nil, domainerrors.Forbidden("only startups have a brand profile")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("name is required")
	}

	profile := &entities.StartupProfile{
		OwnerID:  actor.ID,
		Name:     name,
		Logo:     optionalString(input.Logo),
		Slogan:   strings.TrimSpace(input.Slogan),
		About:    strings.TrimSpace(input.About),
		Industry: strings.TrimSpace(input.Industry),
		Website:  optionalString(input.Website),
	}
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *StartupUsecase) ListStartups(ctx context.Context, industry, search string) ([]*entities.StartupProfile, error) {
	return u.repo.List(ctx, strings.TrimSpace(industry), strings.TrimSpace(search))
}

func (u *StartupUsecase) GetStartup(ctx context.Context, id uuid.UUID) (*entities.StartupProfile, error) {
	return notFoundAs(u.repo.GetByID(ctx, id))
}

func (u *StartupUsecase) GetMyStartup(ctx context.Context, actor Actor) (*entities.StartupProfile, error) {
	return notFoundAs(u.repo.GetByOwner(ctx, actor.ID))
}

func notFoundAs(p *entities.StartupProfile, err error) (*entities.StartupProfile, error) {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.NotFound("startup not found")
	}
	return p, err
}
