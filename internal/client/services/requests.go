package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/iptdemo/internal/client/models"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/dmitrijs2005/iptdemo/internal/logging"
	"github.com/juju/clock"
)

// RequestService files and lists requests for the signed-in account.
type RequestService struct {
	store    RequestStore
	sessions SessionSource
	clock    clock.Clock
	log      logging.Logger
}

func NewRequestService(store RequestStore, sessions SessionSource, clk clock.Clock, log logging.Logger) *RequestService {
	if clk == nil {
		clk = clock.WallClock
	}
	if log == nil {
		log = logging.Discard()
	}
	return &RequestService{store: store, sessions: sessions, clock: clk, log: log.With("component", "requests")}
}

// Add files a pending request of type typ, dated today in local time.
func (s *RequestService) Add(ctx context.Context, typ string) (models.Request, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return models.Request{}, common.ErrNotAuthenticated
	}
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return models.Request{}, common.ErrEmptyRequestType
	}

	req := models.Request{
		Type:          typ,
		Status:        models.RequestStatusPending,
		Date:          s.clock.Now().Local().Format(models.RequestDateLayout),
		EmployeeEmail: sess.Email,
	}
	if err := s.store.AddRequest(ctx, req); err != nil {
		return models.Request{}, err
	}
	s.log.Info(ctx, "request filed", "type", req.Type, "email", req.EmployeeEmail)
	return req, nil
}

// Mine lists the signed-in account's requests.
func (s *RequestService) Mine() ([]models.Request, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.store.RequestsFor(sess.Email), nil
}
