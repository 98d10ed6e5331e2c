package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/metrics"
)

// CheckoutOptions configures the simulated payment provider.
type CheckoutOptions struct {
	Delay    time.Duration
	Currency string
}

// CheckoutUsecase simulates a card checkout that succeeds after a delay.
type CheckoutUsecase struct {
	checkoutRepo repositories.CheckoutRepository
	jobRepo      repositories.JobRepository
	uow          repositories.UnitOfWork
	opts         CheckoutOptions
	metrics      *metrics.Registry
	now          func() time.Time

	mu       sync.Mutex
	failures map[uuid.UUID]int
}

func NewCheckoutUsecase(
	checkoutRepo repositories.CheckoutRepository,
	jobRepo repositories.JobRepository,
	uow repositories.UnitOfWork,
	opts CheckoutOptions,
	m *metrics.Registry,
) *CheckoutUsecase {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	return &CheckoutUsecase{
		checkoutRepo: checkoutRepo,
		jobRepo:      jobRepo,
		uow:          uow,
		opts:         opts,
		metrics:      m,
		now:          func() time.Time { return time.Now().UTC() },
		failures:     make(map[uuid.UUID]int),
	}
}

// CreateCheckout starts a processing checkout for plan.
func (u *CheckoutUsecase) CreateCheckout(ctx context.Context, actor Actor, input *entities.CheckoutInput) (*entities.Checkout, error) {
	plan := entities.CheckoutPlan(strings.ToLower(strings.TrimSpace(input.Plan)))
	price, ok := entities.PlanPrices[plan]
	if !ok {
		return nil, domainerrors.BadRequest("unknown plan")
	}

	checkout := &entities.Checkout{
		UserID:      actor.ID,
		Plan:        plan,
		AmountCents: price,
		Currency:    u.opts.Currency,
		Status:      entities.CheckoutProcessing,
	}

	if plan == entities.PlanFeaturedJob {
		jobID, err := uuid.Parse(strings.TrimSpace(input.JobID))
		if err != nil {
			return nil, domainerrors.BadRequest("featured_job requires a valid jobId")
		}
		job, err := u.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("job not found")
			}
			return nil, err
		}
		if !actor.canManage(job.OwnerID) {
			return nil, domainerrors.Forbidden("you can only feature your own jobs")
		}
		checkout.JobID = null.StringFrom(jobID.String())
	}

	checkout.SettleAt = u.now().Add(u.opts.Delay)
	if err := u.checkoutRepo.Create(ctx, checkout); err != nil {
		return nil, err
	}
	logger.Info(ctx, "Checkout created",
		zap.String("checkout_id", checkout.ID.String()),
		zap.String("plan", string(plan)),
		zap.Time("settle_at", checkout.SettleAt),
	)
	return checkout, nil
}

// GetCheckout returns a checkout owned by the actor. Other users' checkouts look missing.
func (u *CheckoutUsecase) GetCheckout(ctx context.Context, actor Actor, id uuid.UUID) (*entities.Checkout, error) {
	checkout, err := u.checkoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("checkout not found")
		}
		return nil, err
	}
	if checkout.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domainerrors.NotFound("checkout not found")
	}
	return checkout, nil
}

// SettleDue marks due checkouts succeeded and features their jobs.
// It returns how many checkouts were settled.
func (u *CheckoutUsecase) SettleDue(ctx context.Context, now time.Time) (int, error) {
	due, err := u.checkoutRepo.GetDue(ctx, now.UTC(), CheckoutSettleBatchSize)
	if err != nil {
		return 0, err
	}

	settled := 0
	for _, c := range due {
		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.checkoutRepo.MarkSucceeded(txCtx, c.ID, now.UTC()); err != nil {
				return err
			}
			if c.Plan != entities.PlanFeaturedJob || !c.JobID.Valid {
				return nil
			}
			jobID, err := uuid.Parse(c.JobID.String)
			if err != nil {
				return nil
			}
			// the job may have been deleted while the payment was processing
			if err := u.jobRepo.SetFeatured(txCtx, jobID, true); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				u.clearFailures(c.ID)
				continue
			}
			logger.Error(ctx, "Failed to settle checkout", zap.String("checkout_id", c.ID.String()), zap.Error(err))
			u.recordFailure(ctx, c.ID, now.UTC())
			continue
		}
		u.clearFailures(c.ID)
		settled++
	}

	u.metrics.CheckoutsSettled(settled)
	return settled, nil
}

// CancelCheckout stops a checkout that has not settled yet.
func (u *CheckoutUsecase) CancelCheckout(ctx context.Context, actor Actor, id uuid.UUID) (*entities.Checkout, error) {
	checkout, err := u.GetCheckout(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if checkout.Status != entities.CheckoutProcessing {
		return nil, domainerrors.Conflict("checkout is already " + string(checkout.Status))
	}
	at := u.now()
	if err := u.checkoutRepo.MarkCanceled(ctx, id, at); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// settled between the read and the update
			return nil, domainerrors.Conflict("checkout is no longer processing")
		}
		return nil, err
	}
	u.clearFailures(id)
	checkout.Status = entities.CheckoutCanceled
	checkout.SettledAt = null.TimeFrom(at)
	logger.Info(ctx, "Checkout canceled", zap.String("checkout_id", id.String()))
	return checkout, nil
}

// recordFailure cancels a checkout once it has failed to settle
// CheckoutMaxSettleAttempts times, so it stops holding a slot in every batch.
func (u *CheckoutUsecase) recordFailure(ctx context.Context, id uuid.UUID, at time.Time) {
	u.mu.Lock()
	u.failures[id]++
	attempts := u.failures[id]
	u.mu.Unlock()

	if attempts < CheckoutMaxSettleAttempts {
		return
	}
	if err := u.checkoutRepo.MarkCanceled(ctx, id, at); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Error(ctx, "Failed to cancel unsettleable checkout", zap.String("checkout_id", id.String()), zap.Error(err))
		return
	}
	logger.Warn(ctx, "Checkout canceled after repeated settlement failures",
		zap.String("checkout_id", id.String()), zap.Int("attempts", attempts))
	u.clearFailures(id)
}

func (u *CheckoutUsecase) clearFailures(id uuid.UUID) {
	u.mu.Lock()
	delete(u.failures, id)
	u.mu.Unlock()
}
