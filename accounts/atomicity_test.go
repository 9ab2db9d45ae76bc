package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"renthub/apperr"
	"renthub/models"
	"renthub/store"
)

// stuckCodes refuses to delete reset codes.
type stuckCodes struct {
	store.ResetCodes
}

func (stuckCodes) DeleteByUser(int64) error {
	return apperr.Storage("delete reset codes", errors.New("disk full"))
}

type stuckStore struct {
	store.Store
}

func (s stuckStore) ResetCodes() store.ResetCodes {
	return stuckCodes{s.Store.ResetCodes()}
}

type stuckDatabase struct {
	store.Database
}

func (d stuckDatabase) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return d.Database.Transaction(ctx, func(tx store.Store) error {
		return fn(stuckStore{tx})
	})
}

func TestRedeemFailureKeepsPasswordAndCode(t *testing.T) {
	f := newFixture(t, allowAll{})
	u := f.signup(t, "jane@example.com", "secret1")
	require.NoError(t, f.svc.IssueResetCode(ctx, "jane@example.com"))
	code := f.notifier.sent("jane@example.com")[0]

	broken := NewService(stuckDatabase{f.store}, BcryptHasher{Cost: bcrypt.MinCost}, f.notifier, allowAll{}, Settings{})
	broken.now = f.svc.now
	err := broken.RedeemResetCode(ctx, "jane@example.com", code, "brandnew")
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))

	_, err = f.svc.Authenticate(ctx, "jane@example.com", "secret1")
	assert.NoError(t, err)

	var kept int
	require.NoError(t, f.store.DB().Model(&models.ResetCode{}).Where("user_id = ?", u.ID).Count(&kept).Error)
	assert.Equal(t, 1, kept)

	require.NoError(t, f.svc.RedeemResetCode(ctx, "jane@example.com", code, "brandnew"))
}
