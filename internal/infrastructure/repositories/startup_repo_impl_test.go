package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
)

func TestStartupRepository_UpsertKeepsOneProfilePerOwner(t *testing.T) {
	db := newTestDB(t)
	createStartupProfileTable(t, db)
	repo := NewStartupRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	first := &entities.StartupProfile{OwnerID: owner, Name: "Acme", Industry: "Fintech", Website: null.StringFrom("https://acme.io")}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	second := &entities.StartupProfile{OwnerID: owner, Name: "Acme Labs", Slogan: "Ship it", Industry: "AI"}
	require.NoError(t, repo.Upsert(ctx, second))
	require.Equal(t, first.ID, second.ID, "upsert must keep the original row")
	require.Equal(t, "Acme Labs", second.Name)
	require.False(t, second.Website.Valid)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	byID, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "AI", byID.Industry)
}

func TestStartupRepository_ListAndDeleteAll(t *testing.T) {
	db := newTestDB(t)
	createStartupProfileTable(t, db)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	for _, p := range []*entities.StartupProfile{
		{OwnerID: uuid.New(), Name: "Zeta Pay", Industry: "Fintech", Slogan: "payments"},
		{OwnerID: uuid.New(), Name: "Alpha Health", Industry: "Health"},
		{OwnerID: uuid.New(), Name: "Beta Ledger", Industry: "fintech"},
	} {
		require.NoError(t, repo.Upsert(ctx, p))
	}

	all, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Alpha Health", all[0].Name)

	fintech, err := repo.List(ctx, "FINTECH", "")
	require.NoError(t, err)
	require.Len(t, fintech, 2)

	bySlogan, err := repo.List(ctx, "", "PAYMENTS")
	require.NoError(t, err)
	require.Len(t, bySlogan, 1)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	_, err = repo.GetByOwner(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
