package verification

import (
	"context"
	"testing"
	"time"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCode(subject string, purpose entity.CodePurpose, code string) *entity.VerificationCode {
	now := time.Now().UTC()

	return &entity.VerificationCode{
		Subject:   subject,
		Code:      code,
		Purpose:   purpose,
		IssuedAt:  now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newCode("ana@clinica.example", entity.PurposeEmailActivation, "123456")))

	got, err := store.Get(ctx, "ana@clinica.example", entity.PurposeEmailActivation)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nobody@clinica.example", entity.PurposeEmailActivation)
	assert.ErrorIs(t, err, service.ErrCodeNotFound)
}

func TestMemoryStore_PurposesAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newCode("ana@clinica.example", entity.PurposeEmailActivation, "111111")))
	require.NoError(t, store.Put(ctx, newCode("ana@clinica.example", entity.PurposeLogin2FA, "222222")))

	activation, err := store.Get(ctx, "ana@clinica.example", entity.PurposeEmailActivation)
	require.NoError(t, err)
	assert.Equal(t, "111111", activation.Code)

	login, err := store.Get(ctx, "ana@clinica.example", entity.PurposeLogin2FA)
	require.NoError(t, err)
	assert.Equal(t, "222222", login.Code)

	// Deleting one purpose leaves the other untouched.
	require.NoError(t, store.Delete(ctx, "ana@clinica.example", entity.PurposeLogin2FA))
	_, err = store.Get(ctx, "ana@clinica.example", entity.PurposeLogin2FA)
	assert.ErrorIs(t, err, service.ErrCodeNotFound)

	_, err = store.Get(ctx, "ana@clinica.example", entity.PurposeEmailActivation)
	assert.NoError(t, err)
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newCode("ana@clinica.example", entity.PurposeEmailActivation, "111111")))
	require.NoError(t, store.Put(ctx, newCode("ana@clinica.example", entity.PurposeEmailActivation, "999999")))

	got, err := store.Get(ctx, "ana@clinica.example", entity.PurposeEmailActivation)
	require.NoError(t, err)
	assert.Equal(t, "999999", got.Code, "the latest code supersedes the previous one")
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	assert.NoError(t, store.Delete(context.Background(), "nobody@clinica.example", entity.PurposeLogin2FA))
}
