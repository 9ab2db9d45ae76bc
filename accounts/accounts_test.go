package accounts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"renthub/apperr"
	"renthub/db"
	"renthub/models"
	"renthub/policy"
)

var ctx = context.Background()

type captureNotifier struct {
	mu    sync.Mutex
	codes map[string][]string
}

func (n *captureNotifier) SendResetCode(_ context.Context, user models.User, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes[user.Email] = append(n.codes[user.Email], code)
	return nil
}

func (n *captureNotifier) sent(email string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.codes[email]
}

type denyAll struct{}

func (denyAll) Allow(context.Context, string) bool { return false }

type allowAll struct{}

func (allowAll) Allow(context.Context, string) bool { return true }

type fixture struct {
	svc      *Service
	store    *db.Store
	notifier *captureNotifier
	clock    time.Time
}

func newFixture(t *testing.T, limiter Limiter) *fixture {
	t.Helper()
	g, err := db.ConnectSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	t.Cleanup(func() { g.Close() })

	f := &fixture{
		store:    db.NewStore(g),
		notifier: &captureNotifier{codes: map[string][]string{}},
		clock:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.store, BcryptHasher{Cost: bcrypt.MinCost}, f.notifier, limiter, Settings{})
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) signup(t *testing.T, email, password string) models.User {
	t.Helper()
	u, err := f.svc.Signup(ctx, SignupInput{Name: "Jane", Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func TestSignup(t *testing.T) {
	f := newFixture(t, allowAll{})

	u := f.signup(t, "  Jane@Example.com ", "secret1")
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, models.ROLE_TENANT, u.Role)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	_, err := f.svc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	var conflict *apperr.ConflictError
	assert.ErrorAs(t, err, &conflict)

	var invalid *apperr.ValidationError
	_, err = f.svc.Signup(ctx, SignupInput{Name: "Root", Email: "root@example.com", Password: "secret1", Role: models.ROLE_ADMIN})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "role", invalid.Field)

	_, err = f.svc.Signup(ctx, SignupInput{Name: "Short", Email: "short@example.com", Password: "123"})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "password", invalid.Field)

	_, err = f.svc.Signup(ctx, SignupInput{Name: "Bad", Email: "not-an-email", Password: "secret1"})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "email", invalid.Field)

	owner, err := f.svc.Signup(ctx, SignupInput{Name: "Olu", Email: "olu@example.com", Password: "secret1", Role: models.ROLE_OWNER})
	require.NoError(t, err)
	assert.Equal(t, models.ROLE_OWNER, owner.Role)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t, allowAll{})
	u := f.signup(t, "jane@example.com", "secret1")

	got, err := f.svc.Authenticate(ctx, "JANE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.svc.Authenticate(ctx, "jane@example.com", "wrong!")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	_, err = f.svc.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t, allowAll{})
	u := f.signup(t, "jane@example.com", "secret1")
	p := policy.PrincipalOf(u)

	assert.ErrorIs(t, f.svc.ChangePassword(ctx, p, "wrong!", "newsecret"), apperr.ErrInvalidCredentials)
	require.NoError(t, f.svc.ChangePassword(ctx, p, "secret1", "newsecret"))

	_, err := f.svc.Authenticate(ctx, "jane@example.com", "newsecret")
	assert.NoError(t, err)

	assert.True(t, apperr.IsPolicy(f.svc.ChangePassword(ctx, policy.Anonymous(), "a", "bbbbbb")))
}

func TestMe(t *testing.T) {
	f := newFixture(t, allowAll{})
	u := f.signup(t, "jane@example.com", "secret1")

	me, err := f.svc.Me(ctx, policy.PrincipalOf(u))
	require.NoError(t, err)
	assert.Equal(t, u.Email, me.Email)

	_, err = f.svc.Me(ctx, policy.Anonymous())
	assert.True(t, apperr.IsPolicy(err))
}

func TestResetCodeRoundTrip(t *testing.T) {
	f := newFixture(t, allowAll{})
	f.signup(t, "jane@example.com", "secret1")

	require.NoError(t, f.svc.IssueResetCode(ctx, "Jane@Example.com"))
	codes := f.notifier.sent("jane@example.com")
	require.Len(t, codes, 1)
	assert.Len(t, codes[0], 7)

	require.NoError(t, f.svc.RedeemResetCode(ctx, "jane@example.com", codes[0], "brandnew"))
	_, err := f.svc.Authenticate(ctx, "jane@example.com", "brandnew")
	assert.NoError(t, err)

	err = f.svc.RedeemResetCode(ctx, "jane@example.com", codes[0], "another1")
	assert.ErrorIs(t, err, apperr.ErrInvalidOrExpired)
}

func TestIssueTwiceLeavesOnlyLatestCode(t *testing.T) {
	f := newFixture(t, allowAll{})
	u := f.signup(t, "jane@example.com", "secret1")

	require.NoError(t, f.svc.IssueResetCode(ctx, "jane@example.com"))
	require.NoError(t, f.svc.IssueResetCode(ctx, "jane@example.com"))
	codes := f.notifier.sent("jane@example.com")
	require.Len(t, codes, 2)

	var live int
	require.NoError(t, f.store.DB().Model(&models.ResetCode{}).Where("user_id = ?", u.ID).Count(&live).Error)
	assert.Equal(t, 1, live)

	if codes[0] != codes[1] {
		err := f.svc.RedeemResetCode(ctx, "jane@example.com", codes[0], "brandnew")
		assert.ErrorIs(t, err, apperr.ErrInvalidOrExpired)
	}
	require.NoError(t, f.svc.RedeemResetCode(ctx, "jane@example.com", codes[1], "brandnew"))
}

func TestExpiredCodeLeavesPasswordUnchanged(t *testing.T) {
	f := newFixture(t, allowAll{})
	f.signup(t, "jane@example.com", "secret1")

	require.NoError(t, f.svc.IssueResetCode(ctx, "jane@example.com"))
	code := f.notifier.sent("jane@example.com")[0]

	f.clock = f.clock.Add(10*time.Minute + time.Second)
	err := f.svc.RedeemResetCode(ctx, "jane@example.com", code, "brandnew")
	assert.ErrorIs(t, err, apperr.ErrInvalidOrExpired)

	_, err = f.svc.Authenticate(ctx, "jane@example.com", "secret1")
	assert.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, "jane@example.com", "brandnew")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestRedeemFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t, allowAll{})
	f.signup(t, "jane@example.com", "secret1")
	f.signup(t, "noissue@example.com", "secret1")
	require.NoError(t, f.svc.IssueResetCode(ctx, "jane@example.com"))

	for _, tc := range []struct{ email, code string }{
		{"jane@example.com", "0000000x"},
		{"nobody@example.com", "1234567"},
		{"noissue@example.com", "1234567"},
	} {
		err := f.svc.RedeemResetCode(ctx, tc.email, tc.code, "brandnew")
		assert.ErrorIs(t, err, apperr.ErrInvalidOrExpired, tc.email)
	}

	var invalid *apperr.ValidationError
	assert.ErrorAs(t, f.svc.RedeemResetCode(ctx, "jane@example.com", "1234567", "123"), &invalid)
}

func TestIssueIsSilentForUnknownOrThrottledEmails(t *testing.T) {
	f := newFixture(t, allowAll{})
	assert.NoError(t, f.svc.IssueResetCode(ctx, "nobody@example.com"))
	assert.NoError(t, f.svc.IssueResetCode(ctx, "garbage"))
	assert.Empty(t, f.notifier.sent("nobody@example.com"))

	throttled := newFixture(t, denyAll{})
	throttled.signup(t, "jane@example.com", "secret1")
	assert.NoError(t, throttled.svc.IssueResetCode(ctx, "jane@example.com"))
	assert.Empty(t, throttled.notifier.sent("jane@example.com"))
}
