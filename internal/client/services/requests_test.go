package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestService_Add(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.loginAdmin(t)
	svc := NewRequestService(f.store, f.auth, f.clock, nil)

	req, err := svc.Add(ctx, "  Equipment ")
	require.NoError(t, err)
	assert.Equal(t, models.Request{
		Type:          "Equipment",
		Status:        models.RequestStatusPending,
		Date:          "3/7/2026",
		EmployeeEmail: "admin@example.com",
	}, req)

	mine, err := svc.Mine()
	require.NoError(t, err)
	assert.Equal(t, []models.Request{req}, mine)
}

func TestRequestService_Add_EmptyTypeRejected(t *testing.T) {
	f := newFixture(t)
	f.loginAdmin(t)
	svc := NewRequestService(f.store, f.auth, f.clock, nil)

	_, err := svc.Add(context.Background(), "   ")
	require.ErrorIs(t, err, common.ErrEmptyRequestType)
	assert.Empty(t, f.store.Requests())
}

func TestRequestService_RequiresSession(t *testing.T) {
	f := newFixture(t)
	svc := NewRequestService(f.store, f.auth, f.clock, nil)

	_, err := svc.Add(context.Background(), "Leave")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = svc.Mine()
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestRequestService_MineOnlyOwn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.AddRequest(ctx, models.Request{Type: "Leave", EmployeeEmail: "someone@example.com"}))
	f.loginAdmin(t)
	svc := NewRequestService(f.store, f.auth, f.clock, nil)

	mine, err := svc.Mine()
	require.NoError(t, err)
	assert.Empty(t, mine)
}
