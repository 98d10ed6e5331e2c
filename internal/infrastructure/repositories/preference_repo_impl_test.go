package repositories

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"startup-nexus.backend/pkg/redis"
)

func TestPreferenceRepository_Language(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	redis.SetClient(client)
	t.Cleanup(func() {
		redis.SetClient(nil)
		_ = client.Close()
	})

	repo := NewPreferenceRepository()
	ctx := context.Background()
	userID := uuid.New()

	lang, err := repo.GetLanguage(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, lang)

	require.NoError(t, repo.SetLanguage(ctx, userID, "es"))
	lang, err = repo.GetLanguage(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "es", lang)
	require.True(t, mr.Exists("pref:lang:"+userID.String()))
}

func TestPreferenceRepository_NoClient(t *testing.T) {
	redis.SetClient(nil)
	repo := NewPreferenceRepository()

	_, err := repo.GetLanguage(context.Background(), uuid.New())
	require.ErrorIs(t, err, redis.ErrNotInitialized)
}
