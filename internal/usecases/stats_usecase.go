package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"
	"startup-nexus.backend/internal/domain/entities"
)

// StatsUsecase builds the admin dashboard counters.
type StatsUsecase struct {
	repos EcosystemRepos
}

func NewStatsUsecase(repos EcosystemRepos) *StatsUsecase {
	return &StatsUsecase{repos: repos}
}

// Stats gathers every counter concurrently.
func (u *StatsUsecase) Stats(ctx context.Context) (*entities.PlatformStats, error) {
	stats := &entities.PlatformStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := u.repos.Users.Count(gctx, entities.UserFilter{})
		stats.Users = n
		return err
	})
	g.Go(func() error {
		n, err := u.repos.Users.Count(gctx, entities.UserFilter{Status: entities.UserStatusBanned})
		stats.BannedUsers = n
		return err
	})
	g.Go(func() error {
		m, err := u.repos.Jobs.CountByStatus(gctx)
		stats.Jobs = withAllStatuses(m)
		return err
	})
	g.Go(func() error {
		m, err := u.repos.Investors.CountByStatus(gctx)
		stats.Investors = withAllStatuses(m)
		return err
	})
	g.Go(func() error {
		n, err := u.repos.Applications.Count(gctx)
		stats.Applications = n
		return err
	})
	g.Go(func() error {
		n, err := u.repos.Startups.Count(gctx)
		stats.Startups = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func withAllStatuses(m map[entities.ModerationStatus]int64) map[entities.ModerationStatus]int64 {
	out := map[entities.ModerationStatus]int64{
		entities.ModerationPending:  0,
		entities.ModerationApproved: 0,
		entities.ModerationRejected: 0,
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}
