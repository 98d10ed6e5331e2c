package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/usecases"
	"startup-nexus.backend/pkg/metrics"
)

func newCheckoutUsecaseForTest(reg *metrics.Registry) (*usecases.CheckoutUsecase, *MockCheckoutRepository, *MockJobRepository, *MockUnitOfWork) {
	checkoutRepo := new(MockCheckoutRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewCheckoutUsecase(checkoutRepo, jobRepo, uow, usecases.CheckoutOptions{Delay: 2 * time.Second}, reg)
	return uc, checkoutRepo, jobRepo, uow
}

func TestCheckoutUsecase_CreateCheckout_UnknownPlan(t *testing.T) {
	uc, _, _, _ := newCheckoutUsecaseForTest(nil)

	_, err := uc.CreateCheckout(context.Background(), startupActor(), &entities.CheckoutInput{Plan: "gold"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCheckoutUsecase_CreateCheckout_PremiumProfile(t *testing.T) {
	uc, checkoutRepo, _, _ := newCheckoutUsecaseForTest(nil)
	actor := startupActor()

	checkoutRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Checkout")).Return(nil).Once()

	before := time.Now().UTC()
	c, err := uc.CreateCheckout(context.Background(), actor, &entities.CheckoutInput{Plan: "Premium_Profile"})
	require.NoError(t, err)
	assert.Equal(t, entities.PlanPremiumProfile, c.Plan)
	assert.Equal(t, int64(4900), c.AmountCents)
	assert.Equal(t, "usd", c.Currency)
	assert.Equal(t, entities.CheckoutProcessing, c.Status)
	assert.Equal(t, actor.ID, c.UserID)
	assert.False(t, c.JobID.Valid)
	assert.False(t, c.SettleAt.Before(before.Add(2*time.Second)))
}

func TestCheckoutUsecase_CreateCheckout_FeaturedJobOwnership(t *testing.T) {
	uc, checkoutRepo, jobRepo, _ := newCheckoutUsecaseForTest(nil)
	owner := startupActor()
	job := &entities.Job{ID: uuid.New(), OwnerID: owner.ID}

	_, err := uc.CreateCheckout(context.Background(), owner, &entities.CheckoutInput{Plan: "featured_job", JobID: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	jobRepo.On("GetByID", context.Background(), job.ID).Return(job, nil)
	_, err = uc.CreateCheckout(context.Background(), startupActor(), &entities.CheckoutInput{Plan: "featured_job", JobID: job.ID.String()})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	checkoutRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Checkout")).Return(nil).Once()
	c, err := uc.CreateCheckout(context.Background(), owner, &entities.CheckoutInput{Plan: "featured_job", JobID: job.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, job.ID.String(), c.JobID.String)
	assert.Equal(t, int64(9900), c.AmountCents)
}

func TestCheckoutUsecase_GetCheckout_HidesOthers(t *testing.T) {
	uc, checkoutRepo, _, _ := newCheckoutUsecaseForTest(nil)
	owner := startupActor()
	c := &entities.Checkout{ID: uuid.New(), UserID: owner.ID}

	checkoutRepo.On("GetByID", context.Background(), c.ID).Return(c, nil)

	_, err := uc.GetCheckout(context.Background(), startupActor(), c.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := uc.GetCheckout(context.Background(), owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got, err = uc.GetCheckout(context.Background(), adminActor(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCheckoutUsecase_SettleDue(t *testing.T) {
	reg := metrics.New()
	uc, checkoutRepo, jobRepo, uow := newCheckoutUsecaseForTest(reg)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	jobID := uuid.New()

	featured := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanFeaturedJob, JobID: null.StringFrom(jobID.String())}
	premium := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanPremiumProfile}
	raced := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanPremiumProfile}
	broken := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanPremiumProfile}

	checkoutRepo.On("GetDue", context.Background(), now, usecases.CheckoutSettleBatchSize).
		Return([]*entities.Checkout{featured, premium, raced, broken}, nil).Once()
	uow.On("Do", context.Background(), mock.Anything).Return(nil)
	checkoutRepo.On("MarkSucceeded", context.Background(), featured.ID, now).Return(nil).Once()
	checkoutRepo.On("MarkSucceeded", context.Background(), premium.ID, now).Return(nil).Once()
	checkoutRepo.On("MarkSucceeded", context.Background(), raced.ID, now).Return(domainerrors.ErrNotFound).Once()
	checkoutRepo.On("MarkSucceeded", context.Background(), broken.ID, now).Return(errors.New("db down")).Once()
	jobRepo.On("SetFeatured", context.Background(), jobID, true).Return(nil).Once()

	n, err := uc.SettleDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	jobRepo.AssertExpectations(t)
	checkoutRepo.AssertExpectations(t)

	count, err := testutil.GatherAndCount(reg.Gatherer(), "nexus_checkouts_settled_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCheckoutUsecase_SettleDue_DeletedJob(t *testing.T) {
	uc, checkoutRepo, jobRepo, uow := newCheckoutUsecaseForTest(nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	jobID := uuid.New()
	c := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanFeaturedJob, JobID: null.StringFrom(jobID.String())}

	checkoutRepo.On("GetDue", context.Background(), now, usecases.CheckoutSettleBatchSize).Return([]*entities.Checkout{c}, nil).Once()
	uow.On("Do", context.Background(), mock.Anything).Return(nil)
	checkoutRepo.On("MarkSucceeded", context.Background(), c.ID, now).Return(nil).Once()
	jobRepo.On("SetFeatured", context.Background(), jobID, true).Return(domainerrors.ErrNotFound).Once()

	n, err := uc.SettleDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCheckoutUsecase_SettleDue_QueryError(t *testing.T) {
	uc, checkoutRepo, _, _ := newCheckoutUsecaseForTest(nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	checkoutRepo.On("GetDue", context.Background(), now, usecases.CheckoutSettleBatchSize).Return(nil, errors.New("boom")).Once()
	_, err := uc.SettleDue(context.Background(), now)
	assert.ErrorContains(t, err, "boom")
}

func TestCheckoutUsecase_SettleDue_CancelsAfterRepeatedFailures(t *testing.T) {
	uc, checkoutRepo, _, uow := newCheckoutUsecaseForTest(nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stuck := &entities.Checkout{ID: uuid.New(), Plan: entities.PlanPremiumProfile}

	checkoutRepo.On("GetDue", context.Background(), now, usecases.CheckoutSettleBatchSize).
		Return([]*entities.Checkout{stuck}, nil).Times(usecases.CheckoutMaxSettleAttempts)
	uow.On("Do", context.Background(), mock.Anything).Return(nil)
	checkoutRepo.On("MarkSucceeded", context.Background(), stuck.ID, now).Return(errors.New("db down")).
		Times(usecases.CheckoutMaxSettleAttempts)

	for i := 1; i < usecases.CheckoutMaxSettleAttempts; i++ {
		n, err := uc.SettleDue(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	checkoutRepo.AssertNotCalled(t, "MarkCanceled", mock.Anything, mock.Anything, mock.Anything)

	checkoutRepo.On("MarkCanceled", context.Background(), stuck.ID, now).Return(nil).Once()
	n, err := uc.SettleDue(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, n)
	checkoutRepo.AssertExpectations(t)
}

func TestCheckoutUsecase_CancelCheckout(t *testing.T) {
	uc, checkoutRepo, _, _ := newCheckoutUsecaseForTest(nil)
	owner := startupActor()
	open := &entities.Checkout{ID: uuid.New(), UserID: owner.ID, Status: entities.CheckoutProcessing}
	done := &entities.Checkout{ID: uuid.New(), UserID: owner.ID, Status: entities.CheckoutSucceeded}
	raced := &entities.Checkout{ID: uuid.New(), UserID: owner.ID, Status: entities.CheckoutProcessing}

	checkoutRepo.On("GetByID", context.Background(), open.ID).Return(open, nil)
	checkoutRepo.On("GetByID", context.Background(), done.ID).Return(done, nil)
	checkoutRepo.On("GetByID", context.Background(), raced.ID).Return(raced, nil)
	checkoutRepo.On("MarkCanceled", context.Background(), open.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	checkoutRepo.On("MarkCanceled", context.Background(), raced.ID, mock.AnythingOfType("time.Time")).Return(domainerrors.ErrNotFound).Once()

	_, err := uc.CancelCheckout(context.Background(), startupActor(), open.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := uc.CancelCheckout(context.Background(), owner, open.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutCanceled, got.Status)
	assert.True(t, got.SettledAt.Valid)

	_, err = uc.CancelCheckout(context.Background(), owner, done.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	_, err = uc.CancelCheckout(context.Background(), owner, raced.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}
