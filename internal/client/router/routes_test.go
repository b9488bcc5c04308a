package router

import (
	"testing"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/stretchr/testify/assert"
)

var (
	admin = &models.Session{Email: "admin@example.com", Role: models.RoleAdmin}
	user  = &models.Session{Email: "ann@example.com", Role: models.RoleUser}
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in   string
		want Route
	}{
		{"", RouteHome},
		{"/", RouteHome},
		{"#/", RouteHome},
		{"home", RouteHome},
		{"#/login", RouteLogin},
		{"/register", RouteRegister},
		{"verify-email", RouteVerifyEmail},
		{"  Profile ", RouteProfile},
		{"#/accounts", RouteAccounts},
		{"departments", RouteDepartments},
		{"employees", RouteEmployees},
		{"requests", RouteRequests},
		{"#/admin", RouteUnknown},
		{"settings", RouteUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoute(tt.in))
		})
	}
}

func TestResolveRoute_Table(t *testing.T) {
	tests := []struct {
		route Route
		anon  Route
		user  Route
		admin Route
	}{
		{RouteHome, RouteHome, RouteHome, RouteHome},
		{RouteLogin, RouteLogin, RouteLogin, RouteLogin},
		{RouteRegister, RouteRegister, RouteRegister, RouteRegister},
		{RouteVerifyEmail, RouteVerifyEmail, RouteVerifyEmail, RouteVerifyEmail},
		{RouteProfile, RouteLogin, RouteProfile, RouteProfile},
		{RouteAccounts, RouteLogin, RouteHome, RouteAccounts},
		{RouteDepartments, RouteLogin, RouteHome, RouteDepartments},
		{RouteEmployees, RouteLogin, RouteHome, RouteEmployees},
		{RouteRequests, RouteLogin, RouteRequests, RouteRequests},
		{RouteUnknown, RouteHome, RouteHome, RouteHome},
		{Route("nowhere"), RouteHome, RouteHome, RouteHome},
	}

	for _, tt := range tests {
		t.Run(tt.route.String(), func(t *testing.T) {
			assert.Equal(t, tt.anon, ResolveRoute(tt.route, nil), "anonymous")
			assert.Equal(t, tt.user, ResolveRoute(tt.route, user), "user")
			assert.Equal(t, tt.admin, ResolveRoute(tt.route, admin), "admin")
		})
	}
}

// One hop is always enough: resolving a resolved route changes nothing.
func TestResolveRoute_SingleHop(t *testing.T) {
	candidates := append(Routes(), RouteUnknown, Route("bogus"))
	for _, sess := range []*models.Session{nil, user, admin} {
		for _, r := range candidates {
			once := ResolveRoute(r, sess)
			assert.Equal(t, once, ResolveRoute(once, sess), "route %q", r)
		}
	}
}

func TestResolveRoute_HomeIsFixedPoint(t *testing.T) {
	for _, sess := range []*models.Session{nil, user, admin} {
		assert.Equal(t, RouteHome, ResolveRoute(RouteHome, sess))
	}
}

func TestAvailable(t *testing.T) {
	assert.Equal(t,
		[]Route{RouteHome, RouteLogin, RouteRegister, RouteVerifyEmail},
		Available(nil))
	assert.Equal(t,
		[]Route{RouteHome, RouteLogin, RouteRegister, RouteVerifyEmail, RouteProfile, RouteRequests},
		Available(user))
	assert.Equal(t, Routes(), Available(admin))
}

func TestRouteFlags(t *testing.T) {
	assert.True(t, RouteAccounts.RequiresAdmin())
	assert.True(t, RouteAccounts.RequiresAuth())
	assert.True(t, RouteRequests.RequiresAuth())
	assert.False(t, RouteRequests.RequiresAdmin())
	assert.False(t, RouteHome.RequiresAuth())
	assert.False(t, RouteUnknown.Known())
	assert.Equal(t, "unknown", RouteUnknown.String())
}
