package pipeline

import "context"

// StageRepository defines stage data access.
type StageRepository interface {
	Create(ctx context.Context, stage *Stage) error
	GetByID(ctx context.Context, id string) (*Stage, error)
	List(ctx context.Context, activeOnly bool) ([]Stage, error)
	Update(ctx context.Context, stage *Stage) error
	Delete(ctx context.Context, id string) error
	CountDeals(ctx context.Context, stageID string) (int64, error)
}

// Service handles pipeline stage business logic.
type Service struct {
	stages StageRepository
}

func NewService(stages StageRepository) *Service {
	return &Service{stages: stages}
}

func (s *Service) Create(ctx context.Context, req CreateStageRequest) (*Stage, error) {
	stage := &Stage{
		Name:      req.Name,
		SortOrder: req.SortOrder,
		Color:     req.Color,
		IsActive:  true,
		IsWon:     req.IsWon,
		IsLost:    req.IsLost,
	}
	if err := s.stages.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Stage, error) {
	stage, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}
	return stage, nil
}

// List returns stages ordered by sort order; activeOnly mirrors the
// ?is_active=true query used by stage selectors.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Stage, error) {
	return s.stages.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateStageRequest) (*Stage, error) {
	stage, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		stage.Name = *req.Name
	}
	if req.SortOrder != nil {
		stage.SortOrder = *req.SortOrder
	}
	if req.Color != nil {
		stage.Color = *req.Color
	}
	if req.IsActive != nil {
		stage.IsActive = *req.IsActive
	}
	if req.IsWon != nil {
		stage.IsWon = *req.IsWon
	}
	if req.IsLost != nil {
		stage.IsLost = *req.IsLost
	}

	if err := s.stages.Update(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

// Delete removes a stage unless deals still reference it.
func (s *Service) Delete(ctx context.Context, id string) error {
	stage, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stage == nil {
		return ErrStageNotFound
	}

	cnt, err := s.stages.CountDeals(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrStageInUse
	}

	return s.stages.Delete(ctx, id)
}
