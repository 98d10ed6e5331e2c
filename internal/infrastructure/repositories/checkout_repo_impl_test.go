package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
)

func TestCheckoutRepository_DueAndSettle(t *testing.T) {
	db := newTestDB(t)
	createCheckoutTable(t, db)
	repo := NewCheckoutRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	due := &entities.Checkout{
		UserID:      uuid.New(),
		Plan:        entities.PlanPremiumProfile,
		AmountCents: 4900,
		Currency:    "usd",
		Status:      entities.CheckoutProcessing,
		SettleAt:    now.Add(-time.Second),
	}
	later := &entities.Checkout{
		UserID:      uuid.New(),
		Plan:        entities.PlanPremiumProfile,
		AmountCents: 4900,
		Currency:    "usd",
		Status:      entities.CheckoutProcessing,
		SettleAt:    now.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, due))
	require.NoError(t, repo.Create(ctx, later))

	items, err := repo.GetDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, due.ID, items[0].ID)

	require.NoError(t, repo.MarkSucceeded(ctx, due.ID, now))
	got, err := repo.GetByID(ctx, due.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CheckoutSucceeded, got.Status)
	require.True(t, got.SettledAt.Valid)

	require.ErrorIs(t, repo.MarkSucceeded(ctx, due.ID, now), domainerrors.ErrNotFound, "already settled")

	items, err = repo.GetDue(ctx, now, 0)
	require.NoError(t, err)
	require.Empty(t, items)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCheckoutRepository_MarkCanceled(t *testing.T) {
	db := newTestDB(t)
	createCheckoutTable(t, db)
	repo := NewCheckoutRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	c := &entities.Checkout{
		UserID:      uuid.New(),
		Plan:        entities.PlanPremiumProfile,
		AmountCents: 4900,
		Currency:    "usd",
		Status:      entities.CheckoutProcessing,
		SettleAt:    now.Add(-time.Second),
	}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.MarkCanceled(ctx, c.ID, now))
	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CheckoutCanceled, got.Status)

	items, err := repo.GetDue(ctx, now, 0)
	require.NoError(t, err)
	require.Empty(t, items, "canceled checkouts never settle")

	require.ErrorIs(t, repo.MarkSucceeded(ctx, c.ID, now), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.MarkCanceled(ctx, c.ID, now), domainerrors.ErrNotFound)
}
