package account

import (
	"context"
	"strconv"

	"salescrm/internal/cache"
)

// AccountRepository defines account data access.
type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, p ListParams) ([]Account, int64, error)
	Update(ctx context.Context, a *Account) error
}

// Service handles account business logic.
type Service struct {
	accounts AccountRepository
	cache    *cache.Store
}

func NewService(accounts AccountRepository, store *cache.Store) *Service {
	return &Service{accounts: accounts, cache: store}
}

func (s *Service) Create(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	a := &Account{
		Name:     req.Name,
		Category: req.Category,
		Status:   StatusActive,
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "accounts")
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// List serves account pages through the collection cache.
func (s *Service) List(ctx context.Context, p ListParams) (*AccountListResponse, error) {
	key := cache.CollectionKey("accounts", map[string]string{
		"q":        p.Search,
		"status":   p.Status,
		"per_page": strconv.Itoa(p.PerPage),
		"page":     strconv.Itoa(p.Page),
	})

	var cached AccountListResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	accounts, total, err := s.accounts.List(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := &AccountListResponse{Accounts: accounts, Total: total}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateAccountRequest) (*Account, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Status != nil {
		a.Status = *req.Status
	}

	if err := s.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "accounts")
	return a, nil
}
