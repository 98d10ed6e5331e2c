// Command nexus-admin runs maintenance tasks against the platform database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"startup-nexus.backend/internal/config"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/infrastructure/datasources"
	"startup-nexus.backend/internal/infrastructure/repositories"
	"startup-nexus.backend/internal/usecases"
	"startup-nexus.backend/pkg/crypto"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/metrics"
)

type adminRuntime interface {
	EnsureMasterAdmin(ctx context.Context) (*entities.User, error)
	CleanupFakeUsers(ctx context.Context, dryRun bool) (*entities.CleanupResult, error)
	Purge(ctx context.Context, collection string) (int64, error)
	Stats(ctx context.Context) (*entities.PlatformStats, error)
}

type adminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminRuntime, io.Closer, error)
	hash    func(password string) (string, error)
	out     io.Writer
}

type runtimeImpl struct {
	*usecases.EcosystemUsecase
	*usecases.StatsUsecase
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type dbCloser struct{ db *gorm.DB }

func (c dbCloser) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func prepareRuntime(cfg *config.Config) (adminRuntime, io.Closer, error) {
	policy, err := config.LoadModerationPolicy(cfg.Platform.PolicyFile)
	if err != nil {
		return nil, nil, err
	}
	db, err := datasources.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect db: %w", err)
	}
	if err := datasources.Migrate(db); err != nil {
		_ = dbCloser{db}.Close()
		return nil, nil, err
	}

	repos := usecases.EcosystemRepos{
		Users:        repositories.NewUserRepository(db),
		Jobs:         repositories.NewJobRepository(db),
		Investors:    repositories.NewInvestorRepository(db),
		Applications: repositories.NewApplicationRepository(db),
		Startups:     repositories.NewStartupRepository(db),
	}
	eco := usecases.NewEcosystemUsecase(repos, repositories.NewUnitOfWork(db), usecases.NewEmailScreen(policy),
		usecases.MasterAdmin{Email: cfg.Platform.MasterAdminEmail, Name: cfg.Platform.MasterAdminName}, metrics.New())
	return runtimeImpl{EcosystemUsecase: eco, StatsUsecase: usecases.NewStatsUsecase(repos)}, dbCloser{db}, nil
}

func defaultAdminDeps() adminDeps {
	return adminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: prepareRuntime,
		hash:    crypto.HashPassword,
		out:     os.Stdout,
	}
}

// withRuntime loads configuration, opens the database and runs fn.
func (d adminDeps) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt adminRuntime) error) error {
	if err := d.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := d.loadCfg()
	logger.Init(cfg.Server.Env)

	rt, closer, err := d.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()
	return fn(cmd.Context(), rt)
}

func newRootCmd(d adminDeps) *cobra.Command {
	root := &cobra.Command{
		Use:           "nexus-admin",
		Short:         "Maintenance tasks for the Startup Nexus database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(d.out)
	root.AddCommand(
		newSeedAdminCmd(d),
		newCleanupCmd(d),
		newPurgeCmd(d),
		newStatsCmd(d),
		newHashPasswordCmd(d),
	)
	return root
}

func newSeedAdminCmd(d adminDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create or repair the master admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withRuntime(cmd, func(ctx context.Context, rt adminRuntime) error {
				user, err := rt.EnsureMasterAdmin(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "master admin %s (%s) is %s\n", user.Email, user.ID, user.Status)
				return nil
			})
		},
	}
}

func newCleanupCmd(d adminDeps) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "cleanup-fake",
		Short: "Remove accounts on disposable domains or with digit-run local parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withRuntime(cmd, func(ctx context.Context, rt adminRuntime) error {
				result, err := rt.CleanupFakeUsers(ctx, dryRun)
				if err != nil {
					return err
				}
				verb := "removed"
				if result.DryRun {
					verb = "would remove"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d account(s)\n", verb, len(result.Removed))
				for _, email := range result.Removed {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", email)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only list matching accounts")
	return cmd
}

func newPurgeCmd(d adminDeps) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:       "purge <collection>",
		Short:     "Empty one collection (" + strings.Join(usecases.PurgeableCollections, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: usecases.PurgeableCollections,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to purge %q without --yes", args[0])
			}
			return d.withRuntime(cmd, func(ctx context.Context, rt adminRuntime) error {
				n, err := rt.Purge(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d row(s) from %s\n", n, args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the purge")
	return cmd
}

func newStatsCmd(d adminDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print platform statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.withRuntime(cmd, func(ctx context.Context, rt adminRuntime) error {
				stats, err := rt.Stats(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			})
		},
	}
}

// hash-password prints a bcrypt hash for seeding accounts when strict passwords are on.
func newHashPasswordCmd(d adminDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := d.hash(args[0])
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(defaultAdminDeps()).ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
