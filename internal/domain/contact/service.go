package contact

import (
	"context"
	"strconv"

	"salescrm/internal/cache"
	"salescrm/internal/domain/account"
)

// ContactRepository defines contact data access.
type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id string) (*Contact, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]Contact, int64, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id string) error
}

// AccountGetter verifies the owning account exists.
type AccountGetter interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
}

// Service handles contact business logic.
type Service struct {
	contacts ContactRepository
	accounts AccountGetter
	cache    *cache.Store
}

func NewService(contacts ContactRepository, accounts AccountGetter, store *cache.Store) *Service {
	return &Service{contacts: contacts, accounts: accounts, cache: store}
}

func (s *Service) Create(ctx context.Context, req CreateContactRequest) (*Contact, error) {
	owner, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrAccountNotFound
	}

	c := &Contact{
		AccountID: req.AccountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "contacts")
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

// ListByAccount serves an account's contact page through the collection
// cache; contact selectors always scope by account.
func (s *Service) ListByAccount(ctx context.Context, accountID string, limit, offset int) (*ContactListResponse, error) {
	key := cache.CollectionKey("contacts", map[string]string{
		"account_id": accountID,
		"per_page":   strconv.Itoa(limit),
		"offset":     strconv.Itoa(offset),
	})

	var cached ContactListResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	contacts, total, err := s.contacts.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &ContactListResponse{Contacts: contacts, Total: total}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateContactRequest) (*Contact, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Role != nil {
		c.Role = *req.Role
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "contacts")
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrContactNotFound
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateCollections(ctx, "contacts")
	return nil
}
