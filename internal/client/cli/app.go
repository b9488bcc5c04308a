package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/iptdemo/internal/client/config"
	"github.com/dmitrijs2005/iptdemo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/iptdemo/internal/client/router"
	"github.com/dmitrijs2005/iptdemo/internal/client/services"
	"github.com/dmitrijs2005/iptdemo/internal/client/storage"
	"github.com/dmitrijs2005/iptdemo/internal/client/store"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
	"github.com/juju/clock"
)

// App is the CLI controller: it owns the store, the services and the
// router, and turns REPL commands into service calls and navigation.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *store.Store
	auth     services.AuthService
	accounts *services.AccountService
	requests *services.RequestService
	router   *router.Router
	ui       UI
	reader   *bufio.Reader
	out      io.Writer
	closeFn  storage.CloseFunc
	closed   sync.Once
}

// NewApp opens the configured storage backend and loads the document.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, closeFn, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	a, err := newApp(ctx, c, repo, clock.WallClock, os.Stdin, os.Stdout, log)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	a.closeFn = closeFn
	return a, nil
}

// newApp builds an App over an already opened repository.
func newApp(ctx context.Context, c *config.Config, repo kv.Repository, clk clock.Clock, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	st := store.New(repo, c.DocumentKey, log)
	if _, err := st.Load(ctx); err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	tokens := services.NewTokenIssuer([]byte(c.SessionSecret), c.SessionTTL, clk)
	auth := services.NewAuthService(st, tokens, log)
	reader := bufio.NewReader(in)

	a := &App{
		config:   c,
		log:      log,
		store:    st,
		auth:     auth,
		accounts: services.NewAccountService(st, auth, log),
		requests: services.NewRequestService(st, auth, clk, log),
		router:   router.New(st, auth, log),
		ui:       newTerminalUI(reader, out),
		reader:   reader,
		out:      out,
		closeFn:  func() error { return nil },
	}
	a.registerPages()
	return a, nil
}

// Run restores a remembered session, shows the home page and blocks in the
// REPL until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	if _, err := a.auth.RestoreSession(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}

	fmt.Fprintln(a.out, "IPT demo (type 'help' for commands)")
	if _, err := a.router.Navigate(ctx, router.RouteHome); err != nil {
		return err
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// status is shown in the prompt: the active page and who is signed in.
func (a *App) status() string {
	s := "[" + a.router.Current().String() + "]"
	if sess := a.auth.Current(); sess != nil {
		s += " " + sess.Email
	}
	return s
}

// Close releases the storage backend. It is safe to call more than once.
func (a *App) Close() error {
	var err error
	a.closed.Do(func() { err = a.closeFn() })
	return err
}
