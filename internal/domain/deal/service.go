package deal

import (
	"context"
	"time"

	"salescrm/internal/cache"
	"salescrm/internal/domain/account"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/pipeline"
	"salescrm/internal/observability/metrics"
	"salescrm/internal/pkg/money"
)

// DealRepository defines deal data access.
type DealRepository interface {
	Create(ctx context.Context, d *Deal) error
	GetByID(ctx context.Context, id string) (*Deal, error)
	List(ctx context.Context, status string, limit, offset int) ([]Deal, int64, error)
	ListOpenByStage(ctx context.Context, stageID string) ([]Deal, error)
	Update(ctx context.Context, d *Deal) error
}

// StageRepository reads pipeline stages.
type StageRepository interface {
	GetByID(ctx context.Context, id string) (*pipeline.Stage, error)
	List(ctx context.Context, activeOnly bool) ([]pipeline.Stage, error)
}

// AccountGetter verifies deal account references.
type AccountGetter interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
}

// ContactGetter verifies deal contact references.
type ContactGetter interface {
	GetByID(ctx context.Context, id string) (*contact.Contact, error)
}

// Broadcaster pushes board events to connected clients.
type Broadcaster interface {
	Broadcast(eventType string, payload any)
}

// Service handles deal business logic.
type Service struct {
	deals    DealRepository
	stages   StageRepository
	accounts AccountGetter
	contacts ContactGetter
	cache    *cache.Store
	events   Broadcaster
	metrics  *metrics.Metrics
}

func NewService(
	deals DealRepository,
	stages StageRepository,
	accounts AccountGetter,
	contacts ContactGetter,
	store *cache.Store,
	events Broadcaster,
	m *metrics.Metrics,
) *Service {
	return &Service{
		deals:    deals,
		stages:   stages,
		accounts: accounts,
		contacts: contacts,
		cache:    store,
		events:   events,
		metrics:  m,
	}
}

// Create opens a deal in the given stage. The stage must be active; a deal
// created straight into a won/lost stage is closed immediately.
func (s *Service) Create(ctx context.Context, req CreateDealRequest) (*Deal, error) {
	stage, err := s.stages.GetByID(ctx, req.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}
	if !stage.IsActive {
		return nil, ErrStageInactive
	}

	owner, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrAccountNotFound
	}

	if req.ContactID != nil {
		ct, err := s.contacts.GetByID(ctx, *req.ContactID)
		if err != nil {
			return nil, err
		}
		if ct == nil {
			return nil, ErrContactNotFound
		}
	}

	d := &Deal{
		Title:       req.Title,
		Description: req.Description,
		AccountID:   req.AccountID,
		ContactID:   req.ContactID,
		StageID:     req.StageID,
		Value:       req.Value,
		Probability: req.Probability,
		Status:      StatusOpen,
	}
	if req.ExpectedCloseDate != "" {
		t, err := time.Parse("2006-01-02", req.ExpectedCloseDate)
		if err != nil {
			return nil, err
		}
		d.ExpectedCloseDate = &t
	}
	applyStageStatus(d, stage)

	if err := s.deals.Create(ctx, d); err != nil {
		return nil, err
	}

	s.cache.InvalidateCollections(ctx, "deals")
	if s.events != nil {
		s.events.Broadcast("deal_created", d)
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Deal, error) {
	d, err := s.deals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDealNotFound
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) (*DealListResponse, error) {
	deals, total, err := s.deals.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return &DealListResponse{Deals: deals, Total: total}, nil
}

// Kanban returns active stages in board order, each with its open deals and
// summed value, served through the collection cache.
func (s *Service) Kanban(ctx context.Context) (*KanbanResponse, error) {
	key := cache.CollectionKey("deals", map[string]string{"view": "kanban"})

	var cached KanbanResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	stages, err := s.stages.List(ctx, true)
	if err != nil {
		return nil, err
	}

	resp := &KanbanResponse{Columns: make([]KanbanColumn, 0, len(stages))}
	for _, stage := range stages {
		deals, err := s.deals.ListOpenByStage(ctx, stage.ID)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, d := range deals {
			total += d.Value
		}
		resp.Columns = append(resp.Columns, KanbanColumn{
			Stage:             stage,
			Deals:             deals,
			TotalValue:        total,
			TotalValueDisplay: money.FormatSen(total),
		})
	}

	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateDealRequest) (*Deal, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.IsClosed() {
		return nil, ErrDealClosed
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Value != nil {
		d.Value = *req.Value
	}
	if req.Probability != nil {
		d.Probability = *req.Probability
	}
	if req.ExpectedCloseDate != nil {
		if *req.ExpectedCloseDate == "" {
			d.ExpectedCloseDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *req.ExpectedCloseDate)
			if err != nil {
				return nil, err
			}
			d.ExpectedCloseDate = &t
		}
	}

	if err := s.deals.Update(ctx, d); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "deals")
	return d, nil
}

// MoveStage moves an open deal to another active stage. Moving into a
// won/lost stage closes the deal and stamps the actual close date.
func (s *Service) MoveStage(ctx context.Context, id string, stageID string) (*Deal, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		s.metrics.ObserveStageMove("error")
		return nil, err
	}
	if d.IsClosed() {
		s.metrics.ObserveStageMove("rejected")
		return nil, ErrDealClosed
	}

	stage, err := s.stages.GetByID(ctx, stageID)
	if err != nil {
		s.metrics.ObserveStageMove("error")
		return nil, err
	}
	if stage == nil {
		s.metrics.ObserveStageMove("rejected")
		return nil, ErrStageNotFound
	}
	if !stage.IsActive {
		s.metrics.ObserveStageMove("rejected")
		return nil, ErrStageInactive
	}

	d.StageID = stage.ID
	applyStageStatus(d, stage)

	if err := s.deals.Update(ctx, d); err != nil {
		s.metrics.ObserveStageMove("error")
		return nil, err
	}

	s.metrics.ObserveStageMove("ok")
	s.cache.InvalidateCollections(ctx, "deals")
	if s.events != nil {
		s.events.Broadcast("deal_moved", d)
	}
	return d, nil
}

func applyStageStatus(d *Deal, stage *pipeline.Stage) {
	switch {
	case stage.IsWon:
		d.Status = StatusWon
	case stage.IsLost:
		d.Status = StatusLost
	default:
		return
	}
	now := time.Now()
	d.ActualCloseDate = &now
}
