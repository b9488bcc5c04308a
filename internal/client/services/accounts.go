package services

import (
	"context"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
)

// AccountService is the admin's account management.
type AccountService struct {
	store    AccountStore
	sessions SessionSource
	log      logging.Logger
}

func NewAccountService(store AccountStore, sessions SessionSource, log logging.Logger) *AccountService {
	if log == nil {
		log = logging.Discard()
	}
	return &AccountService{store: store, sessions: sessions, log: log.With("component", "accounts")}
}

// List returns all accounts in stored order.
func (s *AccountService) List() []models.Account {
	return s.store.Accounts()
}

// Delete removes the account with email. Only an admin may delete, and
// never their own account. An unknown email is not an error.
func (s *AccountService) Delete(ctx context.Context, email string) error {
	sess := s.sessions.Current()
	switch {
	case sess == nil:
		return common.ErrNotAuthenticated
	case !sess.IsAdmin():
		return common.ErrForbidden
	case sess.Email == email:
		return common.ErrSelfDeletion
	}

	if err := s.store.RemoveAccount(ctx, email); err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "email", email, "by", sess.Email)
	return nil
}
