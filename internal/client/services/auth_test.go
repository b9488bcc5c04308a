package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SeededAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.auth.Login(ctx, "admin@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, sess.Role)
	assert.Equal(t, "admin@example.com", f.auth.Current().Email)

	tok, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	sub, err := f.tokens.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sub)
}

func TestLogin_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.UpsertAccount(ctx, models.Account{
		Email: "unverified@example.com", Password: "secret1", Role: models.RoleUser,
	}))

	tests := []struct {
		name, email, password string
	}{
		{"unknown email", "ghost@example.com", "Password123!"},
		{"wrong password", "admin@example.com", "password123!"},
		{"empty password", "admin@example.com", ""},
		{"unverified", "unverified@example.com", "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := f.auth.Login(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrInvalidCredentials)
			assert.Nil(t, sess)
			assert.Nil(t, f.auth.Current())

			_, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)

	s := f.auth.Current()
	s.Role = models.RoleUser
	assert.True(t, f.auth.Current().IsAdmin())
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	require.NoError(t, f.auth.Logout(ctx))
	assert.Nil(t, f.auth.Current())
	_, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// logging out twice is harmless
	require.NoError(t, f.auth.Logout(ctx))
}

func TestRestoreSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)

	// a fresh service over the same store stands in for a restart
	restarted := NewAuthService(f.store, f.tokens, nil)
	require.Nil(t, restarted.Current())

	sess, err := restarted.RestoreSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "admin@example.com", sess.Email)
	assert.True(t, restarted.Current().IsAdmin())
}

func TestRestoreSession_NothingRemembered(t *testing.T) {
	f := newFixture(t)
	sess, err := f.auth.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestoreSession_UnusableTokenIsForgotten(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, f *fixture)
	}{
		{
			name: "garbage token",
			setup: func(t *testing.T, f *fixture) {
				require.NoError(t, f.store.Remember(context.Background(), common.AuthTokenKey, "admin@example.com"))
			},
		},
		{
			name: "expired token",
			setup: func(t *testing.T, f *fixture) {
				f.loginAdmin(t)
				f.clock.Advance(2 * time.Hour)
			},
		},
		{
			name: "account deleted",
			setup: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				require.NoError(t, f.store.UpsertAccount(ctx, models.Account{
					Email: "ann@example.com", Password: "secret1", Role: models.RoleUser, Verified: true,
				}))
				_, err := f.auth.Login(ctx, "ann@example.com", "secret1")
				require.NoError(t, err)
				require.NoError(t, f.store.RemoveAccount(ctx, "ann@example.com"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			tt.setup(t, f)

			restarted := NewAuthService(f.store, f.tokens, nil)
			sess, err := restarted.RestoreSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, sess)
			assert.Nil(t, restarted.Current())

			_, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
			require.NoError(t, err)
			assert.False(t, ok, "stale token must be forgotten")
		})
	}
}

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acc, err := f.auth.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, acc.Role)
	assert.False(t, acc.Verified)

	stored, ok := f.store.FindAccountByEmail("ann@example.com")
	require.True(t, ok)
	assert.Equal(t, acc, stored)

	pending, ok, err := f.store.Recall(ctx, common.UnverifiedEmailKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ann@example.com", pending)

	assert.Nil(t, f.auth.Current(), "registration does not sign in")
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"short password", RegisterInput{Email: "ann@example.com", Password: "12345"}, common.ErrPasswordTooShort},
		{"short multibyte password", RegisterInput{Email: "ann@example.com", Password: "äääää"}, common.ErrPasswordTooShort},
		{"duplicate email", RegisterInput{Email: "admin@example.com", Password: "secret1"}, common.ErrEmailExists},
		{"short password checked before duplicate", RegisterInput{Email: "admin@example.com", Password: "x"}, common.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			before := f.store.State()

			_, err := f.auth.Register(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, IsPolicyRejection(err))
			assert.Equal(t, before, f.store.State(), "store must be unchanged")

			_, ok, err := f.store.Recall(ctx, common.UnverifiedEmailKey)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// An empty email is refused even though it is neither short-password nor
// duplicate; this is stricter than the length and duplicate rules alone.
func TestRegister_EmptyEmailRejectedAsAddedRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.store.State()

	_, err := f.auth.Register(ctx, RegisterInput{Email: "", Password: "secret1"})
	require.ErrorIs(t, err, common.ErrEmailRequired)
	assert.True(t, IsPolicyRejection(err))
	assert.Equal(t, before, f.store.State())
}

func TestRegister_PasswordLengthBoundary(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"six ascii", "123456", true},
		{"five ascii", "12345", false},
		{"five latin-1", "äääää", false},
		{"three astral count as six", "🔑🔑🔑", true},
		{"two astral and one ascii", "🔑🔑x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.auth.Register(context.Background(), RegisterInput{Email: "ann@example.com", Password: tt.password})
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrPasswordTooShort)
		})
	}
}

func TestRememberCurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.auth.RememberCurrent(ctx), "no session is a no-op")

	f.loginAdmin(t)
	require.NoError(t, f.store.Reset(ctx))
	_, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, f.auth.RememberCurrent(ctx))
	token, ok, err := f.store.Recall(ctx, common.AuthTokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	email, err := f.tokens.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
	require.NotNil(t, f.auth.Current())
}

func TestRememberCurrent_AccountGoneEndsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)
	require.NoError(t, f.store.RemoveAccount(ctx, "admin@example.com"))

	require.NoError(t, f.auth.RememberCurrent(ctx))
	assert.Nil(t, f.auth.Current())
}

func TestVerifyPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.auth.Register(ctx, RegisterInput{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	acc, ok, err := f.auth.VerifyPending(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, acc.Verified)

	stored, _ := f.store.FindAccountByEmail("ann@example.com")
	assert.True(t, stored.Verified)

	_, ok, err = f.store.Recall(ctx, common.UnverifiedEmailKey)
	require.NoError(t, err)
	assert.False(t, ok, "pending email is forgotten once verified")

	_, err = f.auth.Login(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
}

// A second verification has nothing pending. It is still a quiet success;
// the caller navigates to login either way.
func TestVerifyPending_NothingPendingIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.store.State()

	_, ok, err := f.auth.VerifyPending(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, f.store.State())
}

func TestVerifyPending_PendingAccountGone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Remember(ctx, common.UnverifiedEmailKey, "ghost@example.com"))

	_, ok, err := f.auth.VerifyPending(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
