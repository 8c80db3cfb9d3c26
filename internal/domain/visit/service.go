package visit

import (
	"context"
	"strconv"
	"time"

	"salescrm/internal/cache"
	"salescrm/internal/domain/account"
)

// VisitRepository defines visit report data access.
type VisitRepository interface {
	Create(ctx context.Context, v *VisitReport) error
	GetByID(ctx context.Context, id string) (*VisitReport, error)
	GetOpenByUser(ctx context.Context, userID string) (*VisitReport, error)
	List(ctx context.Context, userID, accountID string, limit, offset int) ([]VisitReport, int64, error)
	Update(ctx context.Context, v *VisitReport) error
}

// AccountGetter verifies the visited account exists.
type AccountGetter interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
}

// Service handles visit report business logic.
type Service struct {
	visits   VisitRepository
	accounts AccountGetter
	cache    *cache.Store
}

func NewService(visits VisitRepository, accounts AccountGetter, store *cache.Store) *Service {
	return &Service{visits: visits, accounts: accounts, cache: store}
}

// CheckIn opens a visit for the user at the given account. A user can
// have only one open visit at a time.
func (s *Service) CheckIn(ctx context.Context, userID string, req CheckInRequest) (*VisitReport, error) {
	open, err := s.visits.GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrVisitOpen
	}

	acc, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	v := &VisitReport{
		AccountID: req.AccountID,
		ContactID: req.ContactID,
		UserID:    userID,
		Location:  req.Location,
		Notes:     req.Notes,
		CheckInAt: time.Now(),
	}
	if err := s.visits.Create(ctx, v); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "visits")
	return v, nil
}

// CheckOut closes the user's open visit.
func (s *Service) CheckOut(ctx context.Context, userID string, req CheckOutRequest) (*VisitReport, error) {
	v, err := s.visits.GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNoOpenVisit
	}

	now := time.Now()
	v.CheckOutAt = &now
	if req.Notes != "" {
		v.Notes = req.Notes
	}
	if err := s.visits.Update(ctx, v); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "visits")
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*VisitReport, error) {
	v, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVisitNotFound
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, userID, accountID string, limit, offset int) (*VisitListResponse, error) {
	key := cache.CollectionKey("visits", map[string]string{
		"user_id":    userID,
		"account_id": accountID,
		"limit":      strconv.Itoa(limit),
		"offset":     strconv.Itoa(offset),
	})

	var cached VisitListResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	visits, total, err := s.visits.List(ctx, userID, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &VisitListResponse{Visits: visits, Total: total}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}
