package services

import (
	"context"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
)

// AccountStore is the account side of the store.
type AccountStore interface {
	Accounts() []models.Account
	FindAccountByEmail(email string) (models.Account, bool)
	UpsertAccount(ctx context.Context, acc models.Account) error
	RemoveAccount(ctx context.Context, email string) error
}

// RememberStore keeps the small scalars that survive a restart.
type RememberStore interface {
	Remember(ctx context.Context, key, value string) error
	Recall(ctx context.Context, key string) (string, bool, error)
	Forget(ctx context.Context, key string) error
}

// RequestStore is the request side of the store.
type RequestStore interface {
	AddRequest(ctx context.Context, req models.Request) error
	RequestsFor(email string) []models.Request
}

// SessionSource yields the active session, or nil.
type SessionSource interface {
	Current() *models.Session
}
