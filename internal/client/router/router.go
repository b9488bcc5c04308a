package router

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
)

// StoreReader is the read side of the store that pages render from.
type StoreReader interface {
	Accounts() []models.Account
	FindAccountByEmail(email string) (models.Account, bool)
	Departments() []models.Department
	Employees() []models.Employee
	RequestsFor(email string) []models.Request
}

// SessionSource yields the active session, or nil.
type SessionSource interface {
	Current() *models.Session
}

// View is what a render callback receives.
type View struct {
	Route   Route
	Store   StoreReader
	Session *models.Session
}

// RenderFunc draws one page.
type RenderFunc func(ctx context.Context, v View) error

// Router tracks the active page and dispatches to render callbacks.
type Router struct {
	mu       sync.Mutex
	store    StoreReader
	sessions SessionSource
	log      logging.Logger
	handlers map[Route]RenderFunc
	current  Route
}

func New(store StoreReader, sessions SessionSource, log logging.Logger) *Router {
	if log == nil {
		log = logging.Discard()
	}
	return &Router{
		store:    store,
		sessions: sessions,
		log:      log.With("component", "router"),
		handlers: make(map[Route]RenderFunc),
		current:  RouteHome,
	}
}

// Handle registers fn as the renderer for route, replacing any previous one.
func (r *Router) Handle(route Route, fn RenderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[route] = fn
}

// Navigate resolves requested through the gate, makes the result the
// active page and renders it. A disallowed request is not an error; the
// returned route is the one actually shown.
func (r *Router) Navigate(ctx context.Context, requested Route) (Route, error) {
	sess := r.sessions.Current()
	final := ResolveRoute(requested, sess)
	if final != requested {
		r.log.Debug(ctx, "route redirected", "requested", requested.String(), "resolved", final.String())
	}

	r.mu.Lock()
	r.current = final
	fn := r.handlers[final]
	r.mu.Unlock()

	if fn == nil {
		return final, nil
	}
	return final, fn(ctx, View{Route: final, Store: r.store, Session: sess})
}

// Current returns the active page.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
