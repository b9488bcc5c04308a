package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/iptdemo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/iptdemo/internal/client/store"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, time.March, 7, 10, 30, 0, 0, time.Local)

type fixture struct {
	repo   *kv.MemoryRepository
	store  *store.Store
	clock  *testclock.Clock
	tokens *TokenIssuer
	auth   AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := kv.NewMemoryRepository()
	st := store.New(repo, "", nil)
	_, err := st.Load(context.Background())
	require.NoError(t, err)

	clk := testclock.NewClock(epoch)
	tokens := NewTokenIssuer([]byte("test-secret"), time.Hour, clk)
	return &fixture{
		repo:   repo,
		store:  st,
		clock:  clk,
		tokens: tokens,
		auth:   NewAuthService(st, tokens, nil),
	}
}

func (f *fixture) loginAdmin(t *testing.T) {
	t.Helper()
	_, err := f.auth.Login(context.Background(), "admin@example.com", "Password123!")
	require.NoError(t, err)
}
