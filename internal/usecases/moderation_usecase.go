package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/utils"
)

// ModerationUsecase builds the admin review queue.
type ModerationUsecase struct {
	jobRepo      repositories.JobRepository
	investorRepo repositories.InvestorRepository
}

func NewModerationUsecase(jobRepo repositories.JobRepository, investorRepo repositories.InvestorRepository) *ModerationUsecase {
	return &ModerationUsecase{jobRepo: jobRepo, investorRepo: investorRepo}
}

// Queue returns the pending jobs and pending investors.
func (u *ModerationUsecase) Queue(ctx context.Context) (*entities.ModerationQueue, error) {
	queue := &entities.ModerationQueue{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, _, err := u.jobRepo.List(gctx, entities.JobFilter{Status: entities.ModerationPending}, utils.PaginationParams{})
		queue.Jobs = jobs
		return err
	})
	g.Go(func() error {
		investors, err := u.investorRepo.List(gctx, entities.ModerationPending, "")
		queue.Investors = investors
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return queue, nil
}
