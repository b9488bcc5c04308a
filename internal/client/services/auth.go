package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService manages the single active session.
//
// Contract:
//   - Login: verified account with matching password becomes the session;
//     its token is remembered for restart recovery.
//   - Logout: clears the session and the remembered token.
//   - RestoreSession: reinstates the remembered session; an unusable token
//     or a vanished account leaves no session and no error.
//   - Register: creates an unverified user account and remembers its email
//     as pending verification. No session is created.
//   - VerifyPending: marks the pending account verified. Without a pending
//     account it reports ok=false and no error.
//   - RememberCurrent: remembers a fresh token for the active session, or
//     ends it when its account is gone.
//   - Current: the active session, or nil.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (*models.Session, error)
	Register(ctx context.Context, in RegisterInput) (models.Account, error)
	VerifyPending(ctx context.Context) (acc models.Account, ok bool, err error)
	RememberCurrent(ctx context.Context) error
	Current() *models.Session
}

// AuthStore is everything AuthService needs from the store.
type AuthStore interface {
	AccountStore
	RememberStore
}

type authService struct {
	store  AuthStore
	tokens *TokenIssuer
	log    logging.Logger

	mu      sync.RWMutex
	current *models.Session
}

// NewAuthService constructs an AuthService with no active session.
func NewAuthService(store AuthStore, tokens *TokenIssuer, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{store: store, tokens: tokens, log: log.With("component", "auth")}
}

func (a *authService) Current() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	s := *a.current
	return &s
}

func (a *authService) setCurrent(s *models.Session) {
	a.mu.Lock()
	a.current = s
	a.mu.Unlock()
}

// Login returns common.ErrInvalidCredentials for an unknown email, a wrong
// password or an unverified account alike.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	acc, ok := a.store.FindAccountByEmail(email)
	if !ok || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 || !acc.Verified {
		a.log.Info(ctx, "login rejected", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(acc.Email, string(acc.Role))
	if err != nil {
		return nil, err
	}
	if err := a.store.Remember(ctx, common.AuthTokenKey, token); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	sess := models.NewSession(acc)
	a.setCurrent(sess)
	a.log.Info(ctx, "login succeeded", "email", acc.Email, "role", string(acc.Role))
	return a.Current(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	prev := a.Current()
	a.setCurrent(nil)
	if err := a.store.Forget(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if prev != nil {
		a.log.Info(ctx, "logged out", "email", prev.Email)
	}
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (*models.Session, error) {
	token, ok, err := a.store.Recall(ctx, common.AuthTokenKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	email, err := a.tokens.Subject(token)
	if err != nil {
		a.log.Debug(ctx, "discarding remembered session", "reason", err)
		return nil, a.forgetToken(ctx)
	}

	acc, found := a.store.FindAccountByEmail(email)
	if !found {
		a.log.Debug(ctx, "remembered account no longer exists", "email", email)
		return nil, a.forgetToken(ctx)
	}

	a.setCurrent(models.NewSession(acc))
	a.log.Info(ctx, "session restored", "email", acc.Email)
	return a.Current(), nil
}

func (a *authService) RememberCurrent(ctx context.Context) error {
	cur := a.Current()
	if cur == nil {
		return nil
	}

	acc, found := a.store.FindAccountByEmail(cur.Email)
	if !found {
		a.setCurrent(nil)
		a.log.Info(ctx, "session ended, account no longer exists", "email", cur.Email)
		return nil
	}

	token, err := a.tokens.Issue(acc.Email, string(acc.Role))
	if err != nil {
		return err
	}
	if err := a.store.Remember(ctx, common.AuthTokenKey, token); err != nil {
		return fmt.Errorf("remember session: %w", err)
	}
	a.setCurrent(models.NewSession(acc))
	return nil
}

func (a *authService) forgetToken(ctx context.Context) error {
	if err := a.store.Forget(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("forget stale session: %w", err)
	}
	return nil
}

// passwordLength counts UTF-16 code units, so a character outside the BMP
// counts twice.
func passwordLength(p string) int {
	n := 0
	for _, r := range p {
		n += utf16.RuneLen(r)
	}
	return n
}

// Register checks, in order: password length, empty email, duplicate email.
// The empty-email check is an addition to the length and duplicate rules.
// Nothing is stored when a check fails.
func (a *authService) Register(ctx context.Context, in RegisterInput) (models.Account, error) {
	if passwordLength(in.Password) < common.MinPasswordLength {
		return models.Account{}, common.ErrPasswordTooShort
	}
	if in.Email == "" {
		return models.Account{}, common.ErrEmailRequired
	}
	if _, exists := a.store.FindAccountByEmail(in.Email); exists {
		return models.Account{}, common.ErrEmailExists
	}

	acc := models.Account{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      models.RoleUser,
		Verified:  false,
	}
	if err := a.store.UpsertAccount(ctx, acc); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	if err := a.store.Remember(ctx, common.UnverifiedEmailKey, acc.Email); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}

	a.log.Info(ctx, "account registered", "email", acc.Email)
	return acc, nil
}

func (a *authService) VerifyPending(ctx context.Context) (models.Account, bool, error) {
	email, ok, err := a.store.Recall(ctx, common.UnverifiedEmailKey)
	if err != nil {
		return models.Account{}, false, err
	}
	if !ok {
		return models.Account{}, false, nil
	}

	acc, found := a.store.FindAccountByEmail(email)
	if !found {
		a.log.Debug(ctx, "pending account not found", "email", email)
		return models.Account{}, false, nil
	}

	acc.Verified = true
	if err := a.store.UpsertAccount(ctx, acc); err != nil {
		return models.Account{}, false, fmt.Errorf("verify: %w", err)
	}
	if err := a.store.Forget(ctx, common.UnverifiedEmailKey); err != nil {
		return models.Account{}, false, fmt.Errorf("verify: %w", err)
	}

	a.log.Info(ctx, "email verified", "email", acc.Email)
	return acc, true, nil
}

// IsPolicyRejection reports whether err is a user-facing rejection rather
// than a storage failure.
func IsPolicyRejection(err error) bool {
	for _, target := range []error{
		common.ErrInvalidCredentials,
		common.ErrPasswordTooShort,
		common.ErrEmailRequired,
		common.ErrEmailExists,
		common.ErrNotAuthenticated,
		common.ErrForbidden,
		common.ErrSelfDeletion,
		common.ErrEmptyRequestType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
