package router

import (
	"strings"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
)

// Route names one screen.
type Route string

const (
	RouteHome        Route = "home"
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteVerifyEmail Route = "verify-email"
	RouteProfile     Route = "profile"
	RouteAccounts    Route = "accounts"
	RouteDepartments Route = "departments"
	RouteEmployees   Route = "employees"
	RouteRequests    Route = "requests"

	// RouteUnknown is what ParseRoute returns for anything not in the table.
	RouteUnknown Route = ""
)

type access struct {
	auth  bool
	admin bool
}

// table is the static route table. Admin routes also require a session.
var table = map[Route]access{
	RouteHome:        {},
	RouteLogin:       {},
	RouteRegister:    {},
	RouteVerifyEmail: {},
	RouteProfile:     {auth: true},
	RouteAccounts:    {auth: true, admin: true},
	RouteDepartments: {auth: true, admin: true},
	RouteEmployees:   {auth: true, admin: true},
	RouteRequests:    {auth: true},
}

// order is the menu order.
var order = []Route{
	RouteHome,
	RouteLogin,
	RouteRegister,
	RouteVerifyEmail,
	RouteProfile,
	RouteAccounts,
	RouteDepartments,
	RouteEmployees,
	RouteRequests,
}

// Routes lists every known route in menu order.
func Routes() []Route {
	out := make([]Route, len(order))
	copy(out, order)
	return out
}

// Known reports whether r is in the route table.
func (r Route) Known() bool {
	_, ok := table[r]
	return ok
}

// RequiresAuth reports whether r needs an active session.
func (r Route) RequiresAuth() bool { return table[r].auth }

// RequiresAdmin reports whether r needs the admin role.
func (r Route) RequiresAdmin() bool { return table[r].admin }

func (r Route) String() string {
	if r == RouteUnknown {
		return "unknown"
	}
	return string(r)
}

// ParseRoute accepts a route name with or without the "#/" or "/" prefix.
// An empty path is home; anything else not in the table is RouteUnknown.
func ParseRoute(s string) Route {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "/")
	s = strings.ToLower(s)
	if s == "" {
		return RouteHome
	}
	r := Route(s)
	if !r.Known() {
		return RouteUnknown
	}
	return r
}

// ResolveRoute applies the gate rules, in order:
//   - unknown routes go home;
//   - routes needing a session go to login when there is none;
//   - admin routes go home for non-admin sessions.
func ResolveRoute(requested Route, sess *models.Session) Route {
	a, ok := table[requested]
	switch {
	case !ok:
		return RouteHome
	case a.auth && sess == nil:
		return RouteLogin
	case a.admin && !sess.IsAdmin():
		return RouteHome
	}
	return requested
}

// Available lists, in menu order, the routes sess can open without being
// redirected.
func Available(sess *models.Session) []Route {
	var out []Route
	for _, r := range order {
		if ResolveRoute(r, sess) == r {
			out = append(out, r)
		}
	}
	return out
}
