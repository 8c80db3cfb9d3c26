package lead

import (
	"context"
	"strconv"

	"salescrm/internal/cache"
	"salescrm/internal/domain/pipeline"
	"salescrm/internal/observability/metrics"
)

// LeadRepository defines lead data access, including the conversion
// transaction.
type LeadRepository interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, params ListParams) ([]Lead, int64, error)
	Update(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id string) error
	ApplyConversion(ctx context.Context, l *Lead, p *ConversionPayload) (*ConversionResult, error)
}

// StageRepository reads pipeline stages for the pre-flight stage check.
type StageRepository interface {
	GetByID(ctx context.Context, id string) (*pipeline.Stage, error)
}

// Broadcaster pushes board events to connected clients.
type Broadcaster interface {
	Broadcast(eventType string, payload any)
}

// Service handles lead business logic.
type Service struct {
	leads   LeadRepository
	stages  StageRepository
	cache   *cache.Store
	events  Broadcaster
	metrics *metrics.Metrics
}

func NewService(leads LeadRepository, stages StageRepository, store *cache.Store, events Broadcaster, m *metrics.Metrics) *Service {
	return &Service{leads: leads, stages: stages, cache: store, events: events, metrics: m}
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	l := &Lead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Source:      req.Source,
		Score:       req.Score,
		Notes:       req.Notes,
		Status:      StatusNew,
	}
	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	s.cache.InvalidateCollections(ctx, "leads")
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	key := cache.DetailKey("leads", id)

	var cached Lead
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}

	s.cache.Set(ctx, key, l)
	return l, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (*LeadListResponse, error) {
	key := cache.CollectionKey("leads", map[string]string{
		"q":        params.Search,
		"status":   params.Status,
		"per_page": strconv.Itoa(params.PerPage),
		"page":     strconv.Itoa(params.Page),
	})

	var cached LeadListResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	leads, total, err := s.leads.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := &LeadListResponse{Leads: leads, Total: total}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateLeadRequest) (*Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	if l.IsConverted() {
		return nil, ErrLeadConverted
	}

	if req.FirstName != nil {
		l.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		l.LastName = *req.LastName
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.Phone != nil {
		l.Phone = *req.Phone
	}
	if req.CompanyName != nil {
		l.CompanyName = *req.CompanyName
	}
	if req.Source != nil {
		l.Source = *req.Source
	}
	if req.Score != nil {
		l.Score = *req.Score
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}

	if err := s.leads.Update(ctx, l); err != nil {
		return nil, err
	}
	s.invalidateLead(ctx, id)
	return l, nil
}

// UpdateStatus moves a lead along the qualification funnel. Converted is
// never reachable here; that transition belongs to Convert alone.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	if l.IsConverted() {
		return nil, ErrLeadConverted
	}
	if !CanTransition(l.Status, to) {
		return nil, ErrInvalidTransition
	}

	l.Status = to
	if err := s.leads.Update(ctx, l); err != nil {
		return nil, err
	}
	s.invalidateLead(ctx, id)
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	if l.IsConverted() {
		return ErrLeadConverted
	}

	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLead(ctx, id)
	return nil
}

// Convert runs the lead conversion workflow: pre-flight guards, the stage
// check against the live stage list, the conversion transaction, then the
// cache invalidation fan-out across every collection the conversion
// touched.
func (s *Service) Convert(ctx context.Context, id string, req ConvertRequest) (*ConversionResult, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		s.metrics.ObserveConversion("error")
		return nil, err
	}
	if l == nil {
		s.metrics.ObserveConversion("rejected")
		return nil, ErrLeadNotFound
	}

	stage, err := s.stages.GetByID(ctx, req.StageID)
	if err != nil {
		s.metrics.ObserveConversion("error")
		return nil, err
	}
	if stage == nil {
		s.metrics.ObserveConversion("rejected")
		return nil, ErrStageNotFound
	}
	if !stage.IsActive {
		s.metrics.ObserveConversion("rejected")
		return nil, ErrStageInactive
	}

	payload, err := BuildPayload(l, req)
	if err != nil {
		s.metrics.ObserveConversion("rejected")
		return nil, err
	}

	result, err := s.leads.ApplyConversion(ctx, l, payload)
	if err != nil {
		s.metrics.ObserveConversion("error")
		return nil, err
	}

	s.metrics.ObserveConversion("ok")
	s.cache.InvalidateCollections(ctx, "leads", "deals", "accounts", "contacts")
	s.cache.InvalidateKey(ctx, cache.DetailKey("leads", id))
	if s.events != nil {
		s.events.Broadcast("lead_converted", result)
	}
	return result, nil
}

func (s *Service) invalidateLead(ctx context.Context, id string) {
	s.cache.InvalidateCollections(ctx, "leads")
	s.cache.InvalidateKey(ctx, cache.DetailKey("leads", id))
}
