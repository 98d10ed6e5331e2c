package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0000000000000000000000000000000000000000000000000000000000000000"

func useMiniredis(t *testing.T) {
	t.Helper()
	srv := miniredis.RunT(t)
	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	orig := GetClient()
	SetClient(cli)
	t.Cleanup(func() {
		_ = cli.Close()
		SetClient(orig)
	})
}

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011")
	assert.Error(t, err)

	store, err := NewSessionStore(testKey)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	require.NoError(t, err)
	assert.NotEmpty(t, enc)

	dec, err := store.decrypt(enc)
	require.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00")
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreEncryptDecrypt_InvalidKeyMaterial(t *testing.T) {
	store := &SessionStore{encryptionKey: []byte("short-key")}
	_, err := store.encrypt([]byte("x"))
	assert.Error(t, err)

	_, err = store.decrypt("00")
	assert.Error(t, err)
}

func TestSessionStoreCreateGetDeleteSuccess(t *testing.T) {
	useMiniredis(t)

	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	ctx := context.Background()
	err = store.CreateSession(ctx, "sid-ok", &SessionData{
		UserID:       "u-1",
		Email:        "founder@acme.io",
		Role:         "startup",
		AccessToken:  "a-ok",
		RefreshToken: "r-ok",
	}, time.Minute)
	require.NoError(t, err)

	data, err := store.GetSession(ctx, "sid-ok")
	require.NoError(t, err)
	assert.Equal(t, "a-ok", data.AccessToken)
	assert.Equal(t, "startup", data.Role)

	require.NoError(t, store.DeleteSession(ctx, "sid-ok"))

	_, err = store.GetSession(ctx, "sid-ok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_GetSessionInvalidJSONPayload(t *testing.T) {
	useMiniredis(t)

	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte("plain-text"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Set(ctx, "session:sid-bad-json", enc, time.Minute))

	_, err = store.GetSession(ctx, "sid-bad-json")
	assert.Error(t, err)
}

func TestSessionStore_OperationHooks(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	origSet := setSessionValue
	origGet := getSessionValue
	origDel := delSessionValue
	t.Cleanup(func() {
		setSessionValue = origSet
		getSessionValue = origGet
		delSessionValue = origDel
	})

	setSessionValue = func(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
		return errors.New("set failed")
	}
	err = store.CreateSession(context.Background(), "sid-hook", &SessionData{AccessToken: "a"}, time.Minute)
	assert.Error(t, err)

	getSessionValue = func(_ context.Context, _ string) (string, error) {
		return "", errors.New("connection refused")
	}
	_, err = store.GetSession(context.Background(), "sid-hook")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	delSessionValue = func(_ context.Context, _ string) error { return errors.New("delete failed") }
	assert.Error(t, store.DeleteSession(context.Background(), "sid-hook"))
}

func TestSessionStore_CreateSession_MarshalErrorBranch(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	origMarshal := marshalSessionJSON
	t.Cleanup(func() { marshalSessionJSON = origMarshal })

	marshalSessionJSON = func(v interface{}) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}

	err = store.CreateSession(context.Background(), "sid-marshal", &SessionData{AccessToken: "a"}, time.Minute)
	assert.Error(t, err)
}
