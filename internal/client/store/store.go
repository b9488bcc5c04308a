package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
)

// Store is the single owner of the durable document.
type Store struct {
	mu    sync.RWMutex
	repo  kv.Repository
	key   string
	log   logging.Logger
	state models.StoreState
}

// New returns a Store persisting the document under key in repo. An empty
// key selects common.DefaultDocumentKey. Call Load before use.
func New(repo kv.Repository, key string, log logging.Logger) *Store {
	if key == "" {
		key = common.DefaultDocumentKey
	}
	if log == nil {
		log = logging.Discard()
	}
	s := &Store{repo: repo, key: key, log: log.With("component", "store")}
	s.state.Normalize()
	return s
}

// Load reads the document. A missing, null or malformed document is
// replaced with DefaultState, which is written back immediately. Only
// storage failures are returned as errors.
func (s *Store) Load(ctx context.Context) (models.StoreState, error) {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return models.StoreState{}, fmt.Errorf("load document: %w", err)
	}

	if raw != nil {
		st, err := decode(raw)
		if err == nil {
			s.mu.Lock()
			s.state = st
			s.mu.Unlock()
			return st.Clone(), nil
		}
		s.log.Warn(ctx, "stored document unusable, reseeding defaults", "key", s.key, "error", err)
	} else {
		s.log.Info(ctx, "no stored document, seeding defaults", "key", s.key)
	}

	def := DefaultState()
	if err := s.Save(ctx, def); err != nil {
		return models.StoreState{}, err
	}
	return def.Clone(), nil
}

func decode(raw []byte) (models.StoreState, error) {
	var st *models.StoreState
	if err := json.Unmarshal(raw, &st); err != nil {
		return models.StoreState{}, err
	}
	if st == nil {
		return models.StoreState{}, fmt.Errorf("document is null")
	}
	st.Normalize()
	return *st, nil
}

// Save serializes st and writes it as the whole document, then adopts it
// as the in-memory state.
func (s *Store) Save(ctx context.Context, st models.StoreState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, st.Clone())
}

func (s *Store) saveLocked(ctx context.Context, st models.StoreState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	s.state = st
	s.log.Debug(ctx, "document saved", "key", s.key, "bytes", len(b))
	return nil
}

// mutate applies fn to a copy of the state and saves the copy.
func (s *Store) mutate(ctx context.Context, fn func(st *models.StoreState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	fn(&next)
	return s.saveLocked(ctx, next)
}

// Reset wipes every key the repository holds, including the remembered
// scalars, and writes DefaultState.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info(ctx, "resetting storage", "key", s.key)
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return s.saveLocked(ctx, DefaultState())
}

// State returns a deep copy of the current document.
func (s *Store) State() models.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Accounts)
}

func (s *Store) Departments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Departments)
}

func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, len(s.state.Employees))
	for i, e := range s.state.Employees {
		out[i] = slices.Clone(e)
	}
	return out
}

func (s *Store) Requests() []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Requests)
}

// RequestsFor returns the requests filed by email, in filing order.
func (s *Store) RequestsFor(email string) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Request{}
	for _, r := range s.state.Requests {
		if r.EmployeeEmail == email {
			out = append(out, r)
		}
	}
	return out
}

// FindAccountByEmail looks an account up by its exact email.
func (s *Store) FindAccountByEmail(email string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.Accounts, email)
	if i < 0 {
		return models.Account{}, false
	}
	return s.state.Accounts[i], true
}

func indexOf(accounts []models.Account, email string) int {
	return slices.IndexFunc(accounts, func(a models.Account) bool { return a.Email == email })
}

// UpsertAccount replaces the account with the same email, or appends acc.
func (s *Store) UpsertAccount(ctx context.Context, acc models.Account) error {
	return s.mutate(ctx, func(st *models.StoreState) {
		if i := indexOf(st.Accounts, acc.Email); i >= 0 {
			st.Accounts[i] = acc
			return
		}
		st.Accounts = append(st.Accounts, acc)
	})
}

// RemoveAccount deletes the account with email. Removing an unknown email
// still saves the unchanged document.
func (s *Store) RemoveAccount(ctx context.Context, email string) error {
	return s.mutate(ctx, func(st *models.StoreState) {
		st.Accounts = slices.DeleteFunc(st.Accounts, func(a models.Account) bool { return a.Email == email })
	})
}

// AddRequest appends req.
func (s *Store) AddRequest(ctx context.Context, req models.Request) error {
	return s.mutate(ctx, func(st *models.StoreState) {
		st.Requests = append(st.Requests, req)
	})
}
