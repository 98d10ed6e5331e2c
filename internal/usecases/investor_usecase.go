package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/metrics"
	"startup-nexus.backend/pkg/utils"
)

// InvestorUsecase manages the investor directory.
type InvestorUsecase struct {
	investorRepo repositories.InvestorRepository
	metrics      *metrics.Registry
	now          func() time.Time
}

func NewInvestorUsecase(investorRepo repositories.InvestorRepository, m *metrics.Registry) *InvestorUsecase {
	return &InvestorUsecase{
		investorRepo: investorRepo,
		metrics:      m,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// AddInvestor records a public onboarding submission pending review.
func (u *InvestorUsecase) AddInvestor(ctx context.Context, input *entities.InvestorInput) (*entities.Investor, error) {
	inv := &entities.Investor{
		Name:        strings.TrimSpace(input.Name),
		Email:       utils.NormalizeEmail(input.Email),
		Website:     optionalString(input.Website),
		Stages:      cleanList(input.Stages),
		Verticals:   cleanList(input.Verticals),
		CheckSize:   strings.TrimSpace(input.CheckSize),
		Description: strings.TrimSpace(input.Description),
		Moderation:  entities.NewModeration(),
	}
	if inv.Name == "" {
		return nil, domainerrors.BadRequest("name is required")
	}
	if len(inv.Stages) == 0 {
		return nil, domainerrors.BadRequest("at least one stage is required")
	}
	if err := u.investorRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ModerateInvestor follows the same rule as jobs.
func (u *InvestorUsecase) ModerateInvestor(ctx context.Context, id uuid.UUID, status string) (*entities.Investor, error) {
	s, ok := entities.ParseModerationStatus(status)
	if !ok {
		return nil, domainerrors.BadRequest("status must be Pending, Approved or Rejected")
	}
	inv, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Moderation.Apply(s, u.now())
	if err := u.investorRepo.UpdateModeration(ctx, id, inv.Moderation); err != nil {
		return nil, err
	}
	u.metrics.ModerationDecision("investor", string(s))
	return inv, nil
}

func (u *InvestorUsecase) DeleteInvestor(ctx context.Context, id uuid.UUID) error {
	err := u.investorRepo.Delete(ctx, id)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("investor not found")
	}
	return err
}

// ListPublicInvestors scans approved investors once, applying visibility and
// the stage, vertical and name filters together.
func (u *InvestorUsecase) ListPublicInvestors(ctx context.Context, filter entities.InvestorFilter, p utils.PaginationParams) ([]*entities.Investor, utils.PaginationMeta, error) {
	approved, err := u.investorRepo.List(ctx, entities.ModerationApproved, "")
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	visible := make([]*entities.Investor, 0, len(approved))
	for _, inv := range approved {
		if inv.IsPublic() && filter.Matches(inv) {
			visible = append(visible, inv)
		}
	}
	page, meta := utils.Paginate(visible, p)
	return page, meta, nil
}

// ListAllInvestors is the admin view.
func (u *InvestorUsecase) ListAllInvestors(ctx context.Context, search string) ([]*entities.Investor, error) {
	return u.investorRepo.List(ctx, "", search)
}

func (u *InvestorUsecase) get(ctx context.Context, id uuid.UUID) (*entities.Investor, error) {
	inv, err := u.investorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("investor not found")
		}
		return nil, err
	}
	return inv, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
